package consumer

import (
	"insight-srv/internal/ingestion"
	kafkaDelivery "insight-srv/internal/ingestion/delivery/kafka"
)

// toIngestInput maps the Kafka DTO to usecase input.
func toIngestInput(m kafkaDelivery.BatchIngestedMessage) ingestion.IngestInput {
	input := ingestion.IngestInput{
		BatchID:     m.BatchID,
		OwnerID:     m.OwnerID,
		Platform:    m.Platform,
		AccountID:   m.AccountID,
		FileURL:     m.FileURL,
		RecordCount: m.RecordCount,
	}
	if m.Account != nil {
		input.Account = &ingestion.AccountProfile{
			ExternalID:   m.Account.ExternalID,
			Username:     m.Account.Username,
			FirstName:    m.Account.FirstName,
			LastName:     m.Account.LastName,
			JoinedGroups: m.Account.JoinedGroups,
		}
	}
	return input
}
