package kafka

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildSASLMechanism(t *testing.T) {
	tests := []struct {
		mechanism string
		want      string
	}{
		{mechanism: "PLAIN", want: "PLAIN"},
		{mechanism: "scram-sha-256", want: "SCRAM-SHA-256"},
		{mechanism: "SCRAM-SHA-512", want: "SCRAM-SHA-512"},
	}
	for _, tt := range tests {
		t.Run(tt.mechanism, func(t *testing.T) {
			mech, err := buildSASLMechanism(&config.SASLConfig{Mechanism: tt.mechanism, Username: "u", Password: "p"})
			require.NoError(t, err)
			require.Equal(t, tt.want, mech.Name())
		})
	}

	_, err := buildSASLMechanism(&config.SASLConfig{Mechanism: "GSSAPI"})
	require.Error(t, err)
}

func TestBuildSASLMechanism_Env(t *testing.T) {
	t.Setenv("KU_TEST_USER", "env-user")
	t.Setenv("KU_TEST_PASS", "env-pass")
	mech, err := buildSASLMechanism(&config.SASLConfig{
		Mechanism:   "PLAIN",
		UsernameEnv: "KU_TEST_USER",
		PasswordEnv: "KU_TEST_PASS",
	})
	require.NoError(t, err)
	require.Equal(t, "PLAIN", mech.Name())
}

func TestBuildIAMMechanism(t *testing.T) {
	mech := buildIAMMechanism(domain.TokenProviderFunc(nil), "eu-west-1")
	require.Equal(t, "OAUTHBEARER", mech.Name())
}

func TestBuildTLSConfig(t *testing.T) {
	cfg, err := buildTLSConfig(&config.TLSConfig{Enabled: true, InsecureSkipVerify: true})
	require.NoError(t, err)
	require.True(t, cfg.InsecureSkipVerify)
	require.NotNil(t, cfg.RootCAs)

	_, err = buildTLSConfig(&config.TLSConfig{Enabled: true, CAFile: filepath.Join(t.TempDir(), "missing.pem")})
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not a cert"), 0644))
	_, err = buildTLSConfig(&config.TLSConfig{Enabled: true, CertFile: bad, KeyFile: bad})
	require.Error(t, err)
}

func TestNewClient(t *testing.T) {
	t.Run("no brokers", func(t *testing.T) {
		_, err := NewClient(config.ClusterConfig{}, nil)
		require.Error(t, err)
	})

	t.Run("lazy connect succeeds", func(t *testing.T) {
		cfg := config.ClusterConfig{Name: "local", Brokers: []string{"127.0.0.1:1"}, ClientID: "ku-test"}
		c, err := NewFactory(IAMTokenProvider{}).CreateClient(cfg)
		require.NoError(t, err)
		defer c.Close()
		require.NotNil(t, c.Admin())
		require.Equal(t, "local", c.GetConfig().Name)
	})

	t.Run("iam mode", func(t *testing.T) {
		cfg := config.ClusterConfig{Brokers: []string{"127.0.0.1:1"}, AWS: &config.AWSConfig{IAM: true, Region: "us-east-1"}}
		c, err := NewClient(cfg, IAMTokenProvider{})
		require.NoError(t, err)
		c.Close()
	})

	t.Run("unsupported sasl", func(t *testing.T) {
		cfg := config.ClusterConfig{Brokers: []string{"127.0.0.1:1"}, SASL: &config.SASLConfig{Mechanism: "KERBEROS"}}
		_, err := NewClient(cfg, nil)
		require.Error(t, err)
	})

	t.Run("nil close", func(t *testing.T) {
		var c *Client
		require.NotPanics(t, c.Close)
	})
}
