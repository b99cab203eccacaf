package usecase

import (
	"context"
	"errors"

	"insight-srv/internal/classification"
	"insight-srv/internal/message"
	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input message.ListInput) (message.ListOutput, error) {
	platform, err := parsePlatform(input.Platform)
	if err != nil {
		return message.ListOutput{}, err
	}

	var label string
	if input.Label != "" {
		l, ok := model.ParseLabelFilter(input.Label)
		if !ok {
			return message.ListOutput{}, message.ErrInvalidLabel
		}
		label = string(l)
	}

	input.PaginateQuery.Adjust()

	msgs, total, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		OwnerID:   sc.UserID,
		Platform:  platform,
		AccountID: input.AccountID,
		ChatID:    input.ChatID,
		Label:     label,
		Flagged:   input.Flagged,
		Limit:     input.PaginateQuery.Limit,
		Offset:    input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "message.usecase.List: Failed to list messages: %v", err)
		return message.ListOutput{}, err
	}

	return message.ListOutput{
		Messages:  msgs,
		Paginator: paginator.New(input.PaginateQuery, total, int64(len(msgs))),
	}, nil
}

func (uc *implUseCase) Classify(ctx context.Context, sc model.Scope, input message.ClassifyInput) (classification.Report, error) {
	platform, err := parsePlatform(input.Platform)
	if err != nil {
		return classification.Report{}, err
	}

	msgs, err := uc.repo.FindMessages(ctx, repository.FindMessagesOptions{
		OwnerID:   sc.UserID,
		Platform:  platform,
		AccountID: input.AccountID,
		ChatID:    input.ChatID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "message.usecase.Classify: Failed to load messages: %v", err)
		return classification.Report{}, err
	}

	return uc.classifierUC.ClassifyMessagesByType(msgs), nil
}

func (uc *implUseCase) SetFlag(ctx context.Context, sc model.Scope, input message.SetFlagInput) (model.Message, error) {
	m, err := uc.repo.UpdateFlag(ctx, repository.UpdateFlagOptions{
		OwnerID:   sc.UserID,
		ID:        input.MessageID,
		IsFlagged: input.Flagged,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return model.Message{}, message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "message.usecase.SetFlag: Failed to update message %s: %v", input.MessageID, err)
		return model.Message{}, err
	}

	uc.invalidate(ctx, sc.UserID)
	return m, nil
}

func (uc *implUseCase) UpsertBatch(ctx context.Context, sc model.Scope, input message.UpsertBatchInput) (message.UpsertBatchOutput, error) {
	if len(input.Messages) == 0 {
		return message.UpsertBatchOutput{}, message.ErrEmptyBatch
	}

	var accountID string
	if input.Account != nil {
		acc := *input.Account
		acc.OwnerID = sc.UserID
		stored, err := uc.repo.UpsertAccount(ctx, repository.UpsertAccountOptions{Account: acc})
		if err != nil {
			uc.l.Errorf(ctx, "message.usecase.UpsertBatch: Failed to upsert account %s: %v", acc.ExternalID, err)
			return message.UpsertBatchOutput{}, err
		}
		accountID = stored.ID
	}

	msgs := make([]model.Message, 0, len(input.Messages))
	for _, m := range input.Messages {
		m.OwnerID = sc.UserID
		if accountID != "" {
			m.AccountID = accountID
		}
		msgs = append(msgs, m)
	}

	n, err := uc.repo.UpsertMessages(ctx, repository.UpsertMessagesOptions{Messages: msgs})
	if err != nil {
		uc.l.Errorf(ctx, "message.usecase.UpsertBatch: Failed to upsert %d messages: %v", len(msgs), err)
		return message.UpsertBatchOutput{}, err
	}

	if n > 0 {
		uc.invalidate(ctx, sc.UserID)
	}
	return message.UpsertBatchOutput{Stored: n}, nil
}
