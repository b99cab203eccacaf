package usecase

import (
	"context"
	"sync"

	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
)

type fakeRepo struct {
	mu       sync.Mutex
	messages []model.Message
	accounts map[string]model.Account
	chats    int

	findCalls int
	upserted  []model.Message
	findErr   error
}

func (f *fakeRepo) UpsertMessages(ctx context.Context, opts repository.UpsertMessagesOptions) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, opts.Messages...)
	return len(opts.Messages), nil
}

func (f *fakeRepo) GetMessageByID(ctx context.Context, opts repository.GetMessageOptions) (model.Message, error) {
	for _, m := range f.messages {
		if m.ID == opts.ID && m.OwnerID == opts.OwnerID {
			return m, nil
		}
	}
	return model.Message{}, repository.ErrMessageNotFound
}

func (f *fakeRepo) ListMessages(ctx context.Context, opts repository.ListMessagesOptions) ([]model.Message, int64, error) {
	var out []model.Message
	for _, m := range f.messages {
		if m.OwnerID != opts.OwnerID {
			continue
		}
		if opts.Platform != "" && string(m.Platform) != opts.Platform {
			continue
		}
		if opts.Label != "" && string(m.Label) != opts.Label {
			continue
		}
		if opts.Flagged != nil && m.IsFlagged != *opts.Flagged {
			continue
		}
		out = append(out, m)
	}
	total := int64(len(out))
	start := min(opts.Offset, total)
	end := min(start+opts.Limit, total)
	return out[start:end], total, nil
}

func (f *fakeRepo) FindMessages(ctx context.Context, opts repository.FindMessagesOptions) ([]model.Message, error) {
	f.mu.Lock()
	f.findCalls++
	f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []model.Message
	for _, m := range f.messages {
		if m.OwnerID != opts.OwnerID {
			continue
		}
		if opts.Platform != "" && string(m.Platform) != opts.Platform {
			continue
		}
		if opts.AccountID != "" && m.AccountID != opts.AccountID {
			continue
		}
		if opts.ChatID != "" && m.ChatID != opts.ChatID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeRepo) UpdateFlag(ctx context.Context, opts repository.UpdateFlagOptions) (model.Message, error) {
	for i, m := range f.messages {
		if m.ID == opts.ID && m.OwnerID == opts.OwnerID {
			f.messages[i].IsFlagged = opts.IsFlagged
			return f.messages[i], nil
		}
	}
	return model.Message{}, repository.ErrMessageNotFound
}

func (f *fakeRepo) UpsertAccount(ctx context.Context, opts repository.UpsertAccountOptions) (model.Account, error) {
	a := opts.Account
	if a.ID == "" {
		a.ID = "acc-" + a.ExternalID
	}
	if f.accounts == nil {
		f.accounts = map[string]model.Account{}
	}
	f.accounts[a.ID] = a
	return a, nil
}

func (f *fakeRepo) GetAccountByID(ctx context.Context, opts repository.GetAccountOptions) (model.Account, error) {
	a, ok := f.accounts[opts.ID]
	if !ok || a.OwnerID != opts.OwnerID {
		return model.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeRepo) CountChats(ctx context.Context, opts repository.GetAccountOptions) (int, error) {
	return f.chats, nil
}

type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetAnalysis(ctx context.Context, ownerID, name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[ownerID+"/"+name]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return d, nil
}

func (c *fakeCache) SaveAnalysis(ctx context.Context, ownerID, name string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[ownerID+"/"+name] = data
	return nil
}

func (c *fakeCache) InvalidateOwner(ctx context.Context, ownerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, ownerID)
	for k := range c.data {
		if len(k) > len(ownerID) && k[:len(ownerID)+1] == ownerID+"/" {
			delete(c.data, k)
		}
	}
	return nil
}
