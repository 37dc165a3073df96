package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout is used when no request timeout is configured.
	DefaultTimeout = 10 * time.Second
	// DefaultRegion is the AWS region used for IAM token signing when none is set.
	DefaultRegion = "eu-west-1"
)

// ClusterConfig holds cluster connectivity and security configuration.
type ClusterConfig struct {
	Name      string      `yaml:"name" json:"name"`
	Brokers   []string    `yaml:"brokers" json:"brokers"`
	ClientID  string      `yaml:"client_id,omitempty" json:"client_id,omitempty"`
	TimeoutMs int64       `yaml:"timeout_ms,omitempty" json:"timeout_ms,omitempty"`
	TLS       *TLSConfig  `yaml:"tls,omitempty" json:"tls,omitempty"`
	SASL      *SASLConfig `yaml:"sasl,omitempty" json:"sasl,omitempty"`
	AWS       *AWSConfig  `yaml:"aws,omitempty" json:"aws,omitempty"`
}

// TLSConfig holds TLS related fields.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	CAFile             string `yaml:"ca_file,omitempty" json:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty" json:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty" json:"key_file,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty" json:"insecure_skip_verify,omitempty"`
}

// SASLConfig holds SASL configuration. Credentials may be provided inline or via env var names.
type SASLConfig struct {
	Mechanism   string `yaml:"mechanism,omitempty" json:"mechanism,omitempty"` // PLAIN, SCRAM-SHA-256, SCRAM-SHA-512
	Username    string `yaml:"username,omitempty" json:"username,omitempty"`
	Password    string `yaml:"password,omitempty" json:"password,omitempty"`
	UsernameEnv string `yaml:"username_env,omitempty" json:"username_env,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty" json:"password_env,omitempty"`
}

// AWSConfig enables IAM authentication. Tokens are signed for Region.
type AWSConfig struct {
	IAM    bool   `yaml:"iam,omitempty" json:"iam,omitempty"`
	Region string `yaml:"region,omitempty" json:"region,omitempty"`
}

type FileConfig struct {
	Clusters []ClusterConfig `yaml:"clusters" json:"clusters"`
}

func ReadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func WriteConfig(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// FindCluster returns the profile with the given name.
func (f FileConfig) FindCluster(name string) (ClusterConfig, bool) {
	for _, c := range f.Clusters {
		if c.Name == name {
			return c, true
		}
	}
	return ClusterConfig{}, false
}

// Timeout returns the request timeout, falling back to DefaultTimeout.
func (c *ClusterConfig) Timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// IAMEnabled reports whether IAM token authentication is configured.
func (c *ClusterConfig) IAMEnabled() bool {
	return c.AWS != nil && c.AWS.IAM
}

// Region returns the AWS region used for token signing.
func (c *ClusterConfig) Region() string {
	if c.AWS == nil || c.AWS.Region == "" {
		return DefaultRegion
	}
	return c.AWS.Region
}

// GetAuthType returns a human-readable authentication type based on the cluster config
func (c *ClusterConfig) GetAuthType() string {
	if c.IAMEnabled() {
		return "AWS IAM"
	}

	if c.SASL != nil && c.SASL.Mechanism != "" {
		mechanism := c.SASL.Mechanism
		if c.TLS != nil && c.TLS.Enabled {
			return "SASL/" + mechanism + " + TLS"
		}
		return "SASL/" + mechanism
	}

	if c.TLS != nil && c.TLS.Enabled {
		if c.TLS.CertFile != "" && c.TLS.KeyFile != "" {
			return "mTLS"
		}
		return "TLS"
	}

	return "PLAINTEXT"
}

// ParseBrokers splits a comma separated bootstrap list, dropping blanks.
func ParseBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// FindConfigPath returns the first existing profile file, or "" when there is none.
// KAFKA_UTILS_CONFIG always wins when set.
func FindConfigPath() string {
	if p := os.Getenv("KAFKA_UTILS_CONFIG"); p != "" {
		return p
	}

	names := []string{"kafka-utils.yml", "kafka-utils.yaml"}
	candidates := []string{}
	for _, n := range names {
		candidates = append(candidates, "./"+n)
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			for _, n := range []string{"config.yml", "config.yaml"} {
				candidates = append(candidates, filepath.Join(appdata, "kafka-utils", n))
			}
		}
	} else if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		for _, n := range []string{"config.yml", "config.yaml"} {
			candidates = append(candidates, filepath.Join(xdg, "kafka-utils", n))
		}
	}
	if home != "" {
		for _, n := range []string{"config.yml", "config.yaml"} {
			candidates = append(candidates, filepath.Join(home, ".config", "kafka-utils", n))
		}
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
