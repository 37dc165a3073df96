package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "kafka-utils.yml")

		yamlContent := `clusters:
  - name: dev
    brokers:
      - localhost:9092
      - localhost:9093
    client_id: ku-dev
    timeout_ms: 2500
  - name: prod
    brokers:
      - kafka1.prod:9092
    tls:
      enabled: true
      ca_file: /path/to/ca.pem
    sasl:
      mechanism: SCRAM-SHA-256
      username: admin
      password: secret
  - name: msk
    brokers:
      - b-1.msk.amazonaws.com:9098
    aws:
      iam: true
      region: us-east-1
`
		if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := ReadConfig(configPath)
		if err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}

		if len(cfg.Clusters) != 3 {
			t.Fatalf("expected 3 clusters, got %d", len(cfg.Clusters))
		}
		if cfg.Clusters[0].ClientID != "ku-dev" {
			t.Errorf("expected client_id 'ku-dev', got '%s'", cfg.Clusters[0].ClientID)
		}
		if got := cfg.Clusters[0].Timeout(); got != 2500*time.Millisecond {
			t.Errorf("expected timeout 2.5s, got %s", got)
		}
		if cfg.Clusters[1].SASL == nil || cfg.Clusters[1].SASL.Mechanism != "SCRAM-SHA-256" {
			t.Error("expected SCRAM-SHA-256 sasl mechanism")
		}
		if !cfg.Clusters[2].IAMEnabled() {
			t.Error("expected IAM enabled for msk")
		}
		if cfg.Clusters[2].Region() != "us-east-1" {
			t.Errorf("expected region 'us-east-1', got '%s'", cfg.Clusters[2].Region())
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := ReadConfig("/nonexistent/kafka-utils.yml")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		if err := os.WriteFile(configPath, []byte("clusters: [\n  - name: dev\n    brokers: {"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadConfig(configPath)
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestWriteConfig(t *testing.T) {
	t.Run("write and read back", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "kafka-utils.yml")

		originalCfg := FileConfig{
			Clusters: []ClusterConfig{
				{
					Name:      "test",
					Brokers:   []string{"localhost:9092"},
					ClientID:  "test-client",
					TimeoutMs: 5000,
					SASL:      &SASLConfig{Mechanism: "PLAIN", Username: "user", Password: "pass"},
				},
			},
		}

		if err := WriteConfig(configPath, originalCfg); err != nil {
			t.Fatalf("WriteConfig() error = %v", err)
		}

		readCfg, err := ReadConfig(configPath)
		if err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}

		cluster, ok := readCfg.FindCluster("test")
		if !ok {
			t.Fatal("expected to find cluster 'test'")
		}
		if cluster.TimeoutMs != 5000 {
			t.Errorf("expected timeout_ms 5000, got %d", cluster.TimeoutMs)
		}
		if cluster.SASL == nil || cluster.SASL.Mechanism != "PLAIN" {
			t.Error("expected SASL PLAIN mechanism")
		}
	})

	t.Run("write to invalid path", func(t *testing.T) {
		err := WriteConfig("/nonexistent/directory/kafka-utils.yml", FileConfig{})
		if err == nil {
			t.Error("expected error for invalid path, got nil")
		}
	})
}

func TestFindCluster(t *testing.T) {
	cfg := FileConfig{Clusters: []ClusterConfig{{Name: "dev"}, {Name: "prod"}}}
	if _, ok := cfg.FindCluster("prod"); !ok {
		t.Error("expected prod to be found")
	}
	if _, ok := cfg.FindCluster("Prod"); ok {
		t.Error("profile lookup must be case-sensitive")
	}
}

func TestDefaults(t *testing.T) {
	var c ClusterConfig
	if c.Timeout() != DefaultTimeout {
		t.Errorf("expected default timeout %s, got %s", DefaultTimeout, c.Timeout())
	}
	if c.Region() != DefaultRegion {
		t.Errorf("expected default region %s, got %s", DefaultRegion, c.Region())
	}
	if c.IAMEnabled() {
		t.Error("IAM must be off by default")
	}
}

func TestGetAuthType(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClusterConfig
		want string
	}{
		{name: "plaintext", cfg: ClusterConfig{}, want: "PLAINTEXT"},
		{name: "iam", cfg: ClusterConfig{AWS: &AWSConfig{IAM: true}}, want: "AWS IAM"},
		{name: "sasl", cfg: ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}}, want: "SASL/PLAIN"},
		{name: "sasl tls", cfg: ClusterConfig{SASL: &SASLConfig{Mechanism: "SCRAM-SHA-512"}, TLS: &TLSConfig{Enabled: true}}, want: "SASL/SCRAM-SHA-512 + TLS"},
		{name: "tls", cfg: ClusterConfig{TLS: &TLSConfig{Enabled: true}}, want: "TLS"},
		{name: "mtls", cfg: ClusterConfig{TLS: &TLSConfig{Enabled: true, CertFile: "c.pem", KeyFile: "k.pem"}}, want: "mTLS"},
		{name: "iam disabled", cfg: ClusterConfig{AWS: &AWSConfig{IAM: false}}, want: "PLAINTEXT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.GetAuthType(); got != tt.want {
				t.Errorf("GetAuthType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBrokers(t *testing.T) {
	got := ParseBrokers(" b1:9092, b2:9092 ,,")
	if len(got) != 2 || got[0] != "b1:9092" || got[1] != "b2:9092" {
		t.Errorf("unexpected brokers: %v", got)
	}
	if ParseBrokers("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestFindConfigPath_Env(t *testing.T) {
	t.Setenv("KAFKA_UTILS_CONFIG", "/tmp/custom.yml")
	if got := FindConfigPath(); got != "/tmp/custom.yml" {
		t.Errorf("expected env path, got %q", got)
	}
}

func TestFindConfigPath_XDG(t *testing.T) {
	t.Setenv("KAFKA_UTILS_CONFIG", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if got := FindConfigPath(); got != "" {
		t.Fatalf("expected no config, got %q", got)
	}

	dir := filepath.Join(xdg, "kafka-utils")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("clusters: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigPath(); got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}
