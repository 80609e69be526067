// Command circuitctl is the operator CLI for circuitd: it generates admin
// keys, signs circuit management payloads and queries a node over gRPC.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
)

const envPrefix = "CIRCUITCTL"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli carries settings shared by every subcommand.
type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	root := &cobra.Command{
		Use:           "circuitctl",
		Short:         "Manage circuits on a circuitd node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("addr", "localhost:50051", "circuitd gRPC address")
	pf.String("key", "", "path to the admin .nk seed file")
	pf.String("node-id", "", "node id the request is submitted as")
	pf.Duration("timeout", 10*time.Second, "request timeout")

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindPFlags(pf)

	root.AddCommand(newKeygenCmd(), newPingCmd(c), newCircuitCmd(c))
	return root
}

func (c *cli) context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.v.GetDuration("timeout"))
}

func (c *cli) client() (proto.AdminServiceClient, func(), error) {
	cc, err := grpc.NewClient(c.v.GetString("addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", c.v.GetString("addr"), err)
	}
	return proto.NewAdminServiceClient(cc), func() { _ = cc.Close() }, nil
}

func (c *cli) signer() (*signing.KeySigner, string, error) {
	path := c.v.GetString("key")
	if path == "" {
		return nil, "", fmt.Errorf("--key is required to sign requests")
	}
	nodeID := c.v.GetString("node-id")
	if nodeID == "" {
		return nil, "", fmt.Errorf("--node-id is required to sign requests")
	}
	s, err := signing.SignerFromFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("load key %s: %w", path, err)
	}
	return s, nodeID, nil
}

// submit signs body and sends it to the configured node.
func (c *cli) submit(cmd *cobra.Command, body proto.Body) error {
	s, nodeID, err := c.signer()
	if err != nil {
		return err
	}
	p, err := proto.NewPayload(body, nodeID, s)
	if err != nil {
		return err
	}
	client, closeFn, err := c.client()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := c.context(cmd.Context())
	defer cancel()
	res, err := client.SubmitPayload(ctx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "circuit %s: %s\n", res.GetCircuitId(), res.GetStatus())
	return nil
}

func newPingCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that a node is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closeFn, err := c.client()
			if err != nil {
				return err
			}
			defer closeFn()
			ctx, cancel := c.context(cmd.Context())
			defer cancel()
			res, err := client.Ping(ctx, &proto.PingRequest{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.GetMsg())
			return nil
		},
	}
}
