package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"

	"insight-srv/config"
	"insight-srv/internal/ingestion"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"
)

type fakeUseCase struct {
	calls int
	input ingestion.IngestInput
	owner string
	err   error
}

func (f *fakeUseCase) Ingest(ctx context.Context, input ingestion.IngestInput) (ingestion.IngestOutput, error) {
	f.calls++
	f.input = input
	f.owner = scope.GetScopeFromContext(ctx).UserID
	return ingestion.IngestOutput{BatchID: input.BatchID}, f.err
}

func newTestConsumer(t *testing.T, uc ingestion.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{UseCase: &fakeUseCase{}, KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := New(Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"b"}}}); err == nil {
		t.Error("expected error without usecase")
	}
	if _, err := New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}}); err == nil {
		t.Error("expected error without brokers")
	}
}

func TestHandleBatchIngestedMessage(t *testing.T) {
	const valid = `{"batch_id":"b-1","owner_id":"o-1","platform":"telegram","file_url":"s3://raw/b.jsonl","record_count":10,"account":{"external_id":"42","username":"mai"}}`

	tests := []struct {
		name      string
		value     string
		ucErr     error
		wantErr   bool
		wantCalls int
	}{
		{"valid", valid, nil, false, 1},
		{"invalid json is skipped", `{not json`, nil, false, 0},
		{"missing fields are skipped", `{"batch_id":"b-1"}`, nil, false, 0},
		{"missing file is dropped", valid, ingestion.ErrFileNotFound, false, 1},
		{"bad file is dropped", valid, ingestion.ErrFileParseFailed, false, 1},
		{"download failure is retried", valid, ingestion.ErrFileDownloadFailed, true, 1},
		{"store failure is retried", valid, errors.New("db down"), true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			c := newTestConsumer(t, uc)

			err := c.handleBatchIngestedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(tt.value)})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if uc.calls != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", uc.calls, tt.wantCalls)
			}
		})
	}
}

func TestHandleBatchIngestedMessageInput(t *testing.T) {
	uc := &fakeUseCase{}
	c := newTestConsumer(t, uc)

	value := `{"batch_id":"b-1","owner_id":"o-1","platform":"telegram","account_id":"acc-1","file_url":"raw/b.jsonl","record_count":10,"completed_at":"2026-01-01T00:00:00Z","account":{"external_id":"42","username":"mai","joined_groups":4}}`
	if err := c.handleBatchIngestedMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(value)}); err != nil {
		t.Fatalf("err = %v", err)
	}

	if uc.owner != "o-1" {
		t.Errorf("scope owner = %q", uc.owner)
	}
	in := uc.input
	if in.BatchID != "b-1" || in.AccountID != "acc-1" || in.FileURL != "raw/b.jsonl" || in.RecordCount != 10 {
		t.Errorf("input = %+v", in)
	}
	if in.Account == nil || in.Account.ExternalID != "42" || in.Account.JoinedGroups != 4 {
		t.Errorf("account = %+v", in.Account)
	}
}
