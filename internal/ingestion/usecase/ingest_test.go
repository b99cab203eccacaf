package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"insight-srv/config"
	"insight-srv/internal/ingestion"
	"insight-srv/internal/message"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	sentimentUC "insight-srv/internal/sentiment/usecase"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

type fakeStorage struct {
	minio.MinIO
	files map[string]string
	err   error
}

func (f *fakeStorage) DownloadFile(ctx context.Context, req *minio.DownloadRequest) (io.ReadCloser, *minio.DownloadHeaders, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	body, ok := f.files[req.BucketName+"/"+req.ObjectName]
	if !ok {
		return nil, nil, minio.NewObjectNotFoundError(req.ObjectName)
	}
	return io.NopCloser(strings.NewReader(body)), &minio.DownloadHeaders{}, nil
}

type fakeMessageUC struct {
	message.UseCase
	mu    sync.Mutex
	input message.UpsertBatchInput
	sc    model.Scope
	calls int
	err   error
}

func (f *fakeMessageUC) UpsertBatch(ctx context.Context, sc model.Scope, input message.UpsertBatchInput) (message.UpsertBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.sc = sc
	f.input = input
	if f.err != nil {
		return message.UpsertBatchOutput{}, f.err
	}
	return message.UpsertBatchOutput{Stored: len(input.Messages)}, nil
}

type fakePublisher struct {
	events []ingestion.AnalysisCompleted
}

func (f *fakePublisher) PublishAnalysisCompleted(ctx context.Context, event ingestion.AnalysisCompleted) error {
	f.events = append(f.events, event)
	return nil
}

type fakeAlerter struct {
	alerts []ingestion.RiskAlert
	err    error
}

func (f *fakeAlerter) PublishRiskAlert(ctx context.Context, alert ingestion.RiskAlert) error {
	f.alerts = append(f.alerts, alert)
	return f.err
}

type fixture struct {
	uc        ingestion.UseCase
	storage   *fakeStorage
	messages  *fakeMessageUC
	publisher *fakePublisher
	alerter   *fakeAlerter
}

func newFixture(files map[string]string) fixture {
	l := log.NewNop()
	f := fixture{
		storage:   &fakeStorage{files: files},
		messages:  &fakeMessageUC{},
		publisher: &fakePublisher{},
		alerter:   &fakeAlerter{},
	}
	f.uc = New(l, config.IngestionConfig{MaxConcurrency: 2}, f.storage, f.messages, sentimentUC.New(l), f.publisher, f.alerter)
	return f
}

func validInput() ingestion.IngestInput {
	return ingestion.IngestInput{
		BatchID:  "b1",
		OwnerID:  "owner-1",
		Platform: "telegram",
		FileURL:  "s3://raw/batch.jsonl",
	}
}

const batchFile = `{"id": 1, "text": "Great news friends", "timestamp": "2024-05-01T10:00:00Z", "chat_id": -100, "label": "safe"}
not json at all
{"id": "2", "messageText": "urgent: send bitcoin to claim prize", "timestamp": 1714557600, "label": "FRAUD", "is_flagged": true, "risk_score": 9}

{"text": "no id here"}
{"id": "4", "text": "buy followers", "label": "spam", "risk_score": "high"}
{"id": "5", "text": "wrong platform", "platform": "youtube"}
{"id": "6", "label": "sensitive"}
`

func TestIngest(t *testing.T) {
	f := newFixture(map[string]string{"raw/batch.jsonl": batchFile})

	out, err := f.uc.Ingest(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if out.InvalidLines != 1 {
		t.Errorf("InvalidLines = %d, want 1", out.InvalidLines)
	}
	if out.TotalRecords != 6 {
		t.Errorf("TotalRecords = %d, want 6", out.TotalRecords)
	}
	if out.Stored != 4 || out.Skipped != 2 {
		t.Errorf("Stored = %d, Skipped = %d; want 4, 2", out.Stored, out.Skipped)
	}
	if len(out.Skips) != 2 || out.Skips[0].Reason != ingestion.SkipValidation || out.Skips[1].Reason != ingestion.SkipPlatform {
		t.Errorf("Skips = %+v", out.Skips)
	}

	if f.messages.sc.UserID != "owner-1" || f.messages.sc.Role != model.RoleSystem {
		t.Errorf("scope = %+v", f.messages.sc)
	}
	msgs := f.messages.input.Messages
	wantIDs := []string{"1", "2", "4", "6"}
	for i, id := range wantIDs {
		if msgs[i].ExternalID != id {
			t.Errorf("msgs[%d].ExternalID = %q, want %q", i, msgs[i].ExternalID, id)
		}
	}

	if msgs[0].ChatID != "-100" || msgs[0].Label != model.LabelSafe || msgs[0].Timestamp.Year() != 2024 {
		t.Errorf("first message = %+v", msgs[0])
	}
	fraud := msgs[1]
	if fraud.Text == "" || fraud.Label != model.LabelFraud || !fraud.IsFlagged || fraud.RiskScore == nil || *fraud.RiskScore != 9 {
		t.Errorf("fraud message = %+v", fraud)
	}
	if fraud.ScamScore == 0 {
		t.Error("fraud message was not scored")
	}
	if msgs[2].RiskScore != nil {
		t.Error("non-numeric risk score should be dropped")
	}
	if msgs[3].Label != model.LabelSensitive || msgs[3].Text != "" {
		t.Errorf("label-only message = %+v", msgs[3])
	}
	for _, m := range msgs {
		if m.BatchID != "b1" || m.Platform != model.PlatformTelegram {
			t.Errorf("message %s batch %q platform %q", m.ExternalID, m.BatchID, m.Platform)
		}
	}

	if out.Analysis.TotalMessages != 4 {
		t.Errorf("Analysis.TotalMessages = %d, want 4", out.Analysis.TotalMessages)
	}
	if len(f.publisher.events) != 1 || f.publisher.events[0].Stored != 4 {
		t.Errorf("events = %+v", f.publisher.events)
	}
}

func TestIngestHighRiskAlert(t *testing.T) {
	file := `{"id":"1","text":"send bitcoin now"}
{"id":"2","text":"verify your password"}
{"id":"3","text":"hello"}
`
	f := newFixture(map[string]string{"raw/batch.jsonl": file})
	f.alerter.err = errors.New("broker down")

	out, err := f.uc.Ingest(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if out.Analysis.ScamRisk != sentiment.RiskHigh {
		t.Fatalf("ScamRisk = %s, want High", out.Analysis.ScamRisk)
	}
	if len(f.alerter.alerts) != 1 || f.alerter.alerts[0].ScamMessageCount != 2 {
		t.Errorf("alerts = %+v", f.alerter.alerts)
	}
}

func TestIngestNoAlertBelowHigh(t *testing.T) {
	f := newFixture(map[string]string{"raw/batch.jsonl": `{"id":"1","text":"lovely day"}`})

	if _, err := f.uc.Ingest(context.Background(), validInput()); err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(f.alerter.alerts) != 0 {
		t.Errorf("alerts = %+v, want none", f.alerter.alerts)
	}
}

func TestIngestErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ingestion.IngestInput)
		storage error
		wantErr error
	}{
		{"unknown platform", func(in *ingestion.IngestInput) { in.Platform = "myspace" }, nil, ingestion.ErrInvalidBatch},
		{"missing batch id", func(in *ingestion.IngestInput) { in.BatchID = "" }, nil, ingestion.ErrInvalidBatch},
		{"missing owner", func(in *ingestion.IngestInput) { in.OwnerID = "" }, nil, ingestion.ErrInvalidBatch},
		{"bad url", func(in *ingestion.IngestInput) { in.FileURL = "http://x/y" }, nil, ingestion.ErrFileNotFound},
		{"missing object", func(in *ingestion.IngestInput) { in.FileURL = "s3://raw/none.jsonl" }, nil, ingestion.ErrFileNotFound},
		{"storage down", func(in *ingestion.IngestInput) {}, errors.New("dial tcp"), ingestion.ErrFileDownloadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(map[string]string{"raw/batch.jsonl": batchFile})
			f.storage.err = tt.storage
			in := validInput()
			tt.mutate(&in)

			_, err := f.uc.Ingest(context.Background(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Ingest() error = %v, want %v", err, tt.wantErr)
			}
			if f.messages.calls != 0 {
				t.Error("nothing should be stored")
			}
		})
	}
}

func TestIngestLineTooLong(t *testing.T) {
	l := log.NewNop()
	long := `{"id":"1","text":"` + strings.Repeat("a", 200) + `"}`
	storage := &fakeStorage{files: map[string]string{"raw/batch.jsonl": long}}
	uc := New(l, config.IngestionConfig{MaxLineBytes: 64}, storage, &fakeMessageUC{}, sentimentUC.New(l), nil, nil)

	if _, err := uc.Ingest(context.Background(), validInput()); !errors.Is(err, ingestion.ErrFileParseFailed) {
		t.Errorf("Ingest() error = %v, want ErrFileParseFailed", err)
	}
}

func TestIngestStoreFailure(t *testing.T) {
	f := newFixture(map[string]string{"raw/batch.jsonl": batchFile})
	f.messages.err = errors.New("db down")

	if _, err := f.uc.Ingest(context.Background(), validInput()); err == nil {
		t.Fatal("Ingest() error = nil, want error")
	}
	if len(f.publisher.events) != 0 {
		t.Error("no event should be published when storing fails")
	}
}

func TestParseFileURL(t *testing.T) {
	tests := []struct {
		in      string
		bucket  string
		object  string
		wantErr bool
	}{
		{"s3://raw/2024/05/b1.jsonl", "raw", "2024/05/b1.jsonl", false},
		{"minio://raw/b1.jsonl", "raw", "b1.jsonl", false},
		{"raw/b1.jsonl", "raw", "b1.jsonl", false},
		{"s3://raw", "", "", true},
		{"s3:///b1.jsonl", "", "", true},
		{"https://host/raw/b1.jsonl", "", "", true},
		{"", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bucket, object, err := parseFileURL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFileURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if bucket != tt.bucket || object != tt.object {
				t.Errorf("parseFileURL(%q) = %q, %q", tt.in, bucket, object)
			}
		})
	}
}
