package postgre

import (
	"strings"
	"testing"

	"insight-srv/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "insight"})
	for _, want := range []string{"host=db", "port=5432", "dbname=insight", "sslmode=disable", "search_path=public"} {
		if !strings.Contains(got, want) {
			t.Errorf("DSN() = %q, missing %q", got, want)
		}
	}

	got = DSN(config.PostgresConfig{Host: "db", Port: 5432, SSLMode: "require", Schema: "insight"})
	if !strings.Contains(got, "sslmode=require") || !strings.Contains(got, "search_path=insight") {
		t.Errorf("DSN() = %q, want explicit sslmode and schema", got)
	}
}
