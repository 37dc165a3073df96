// Package cmd provides the kafka-utils command line: batch commands for brokers, topics and
// consumer groups, the interactive console and the HTTP API server.
package cmd

import (
	"fmt"
	"strings"

	"github.com/OliveiraNt/kafka-utils/internal/application"
	"github.com/OliveiraNt/kafka-utils/internal/config"
	"github.com/OliveiraNt/kafka-utils/internal/domain"
	"github.com/OliveiraNt/kafka-utils/internal/infrastructure/kafka"
	"github.com/OliveiraNt/kafka-utils/internal/infrastructure/repository"
	"github.com/OliveiraNt/kafka-utils/internal/utils"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	bootstrapServers string
	iamAuth          bool
	timeoutMs        int64
	awsRegion        string
	configPath       string
	cluster          string
}

// newGateway builds the gateway used by every command. Tests replace it.
var newGateway = func(source kafka.ConfigSource) domain.ClusterGateway {
	return kafka.NewGateway(source, kafka.NewFactory(kafka.IAMTokenProvider{}))
}

// NewRootCmd creates the kafka-utils root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "kafka-utils",
		Short:         "Inspect and clean up Kafka clusters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.bootstrapServers, "bootstrap-servers", "", "Kafka bootstrap servers (host:port, comma-separated)")
	flags.BoolVar(&opts.iamAuth, "iam-auth", false, "Authenticate with AWS MSK IAM")
	flags.Int64Var(&opts.timeoutMs, "timeout", config.DefaultTimeout.Milliseconds(), "Request timeout in milliseconds")
	flags.StringVar(&opts.awsRegion, "aws-region", config.DefaultRegion, "AWS region used to sign IAM tokens")
	flags.StringVar(&opts.configPath, "config", "", "Path to the profile file (default: discovered)")
	flags.StringVar(&opts.cluster, "cluster", "", "Name of a profile from the config file")

	cmd.AddCommand(newClusterCmd(opts))
	cmd.AddCommand(newTopicsCmd(opts))
	cmd.AddCommand(newConsumersCmd(opts))
	cmd.AddCommand(newConsoleCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// connection is the resolved target of a command.
type connection struct {
	gw    domain.ClusterGateway
	label string
	repo  *repository.ProfileRepository
}

func (c *connection) Close() {
	if c.repo != nil {
		if err := c.repo.Close(); err != nil {
			utils.Logger.Warn("close profile repository", "err", err)
		}
	}
}

func (c *connection) services() (*application.ClusterService, *application.TopicService, *application.ConsumerGroupsService) {
	cs := application.NewClusterService(c.gw)
	return cs, application.NewTopicService(cs), application.NewConsumerGroupsService(cs)
}

// connect resolves the connection settings from flags or, with --cluster, from a profile
// overlaid with the explicitly set flags.
func connect(cmd *cobra.Command, opts *globalOptions) (*connection, error) {
	if opts.timeoutMs <= 0 {
		return nil, fmt.Errorf("--timeout must be positive, got %d", opts.timeoutMs)
	}

	if opts.cluster == "" {
		cfg := config.ClusterConfig{
			Name:      "cli",
			Brokers:   config.ParseBrokers(opts.bootstrapServers),
			TimeoutMs: opts.timeoutMs,
			AWS:       &config.AWSConfig{IAM: opts.iamAuth, Region: opts.awsRegion},
		}
		if err := application.ValidateConnection(cfg); err != nil {
			return nil, fmt.Errorf("%w (set --bootstrap-servers or --cluster)", err)
		}
		utils.Logger.Debug("using flag connection", "brokers", cfg.Brokers, "auth", cfg.GetAuthType())
		return &connection{gw: newGateway(kafka.StaticConfig(cfg)), label: strings.Join(cfg.Brokers, ",")}, nil
	}

	path := opts.configPath
	if path == "" {
		path = config.FindConfigPath()
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %q (no config file found)", application.ErrProfileNotFound, opts.cluster)
	}

	repo := repository.NewProfileRepository(path, opts.cluster, flagOverlay(cmd, opts))
	if err := repo.LoadFromFile(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := repo.Current()
	if err != nil {
		return nil, err
	}
	if err := application.ValidateConnection(cfg); err != nil {
		return nil, fmt.Errorf("profile %q: %w", opts.cluster, err)
	}
	utils.Logger.Debug("using profile", "profile", opts.cluster, "path", path, "auth", cfg.GetAuthType())
	return &connection{gw: newGateway(repo), label: opts.cluster, repo: repo}, nil
}

// flagOverlay applies the flags the user set explicitly on top of a profile.
func flagOverlay(cmd *cobra.Command, opts *globalOptions) repository.Overlay {
	return func(c config.ClusterConfig) config.ClusterConfig {
		if flagChanged(cmd, "bootstrap-servers") {
			c.Brokers = config.ParseBrokers(opts.bootstrapServers)
		}
		if flagChanged(cmd, "timeout") {
			c.TimeoutMs = opts.timeoutMs
		}
		if flagChanged(cmd, "iam-auth") || flagChanged(cmd, "aws-region") {
			aws := config.AWSConfig{}
			if c.AWS != nil {
				aws = *c.AWS
			}
			if flagChanged(cmd, "iam-auth") {
				aws.IAM = opts.iamAuth
			}
			if flagChanged(cmd, "aws-region") {
				aws.Region = opts.awsRegion
			}
			c.AWS = &aws
		}
		return c
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}
