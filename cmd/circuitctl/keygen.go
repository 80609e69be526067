package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devghori1264/aerophoenix/circuitd/internal/signing"
)

type keygenOptions struct {
	dir   string
	force bool
	quiet bool
}

func newKeygenCmd() *cobra.Command {
	var o keygenOptions
	cmd := &cobra.Command{
		Use:   "keygen [name]",
		Short: "Generate an admin key pair as <name>.nk and <name>.pub",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "admin"
			if len(args) == 1 {
				name = args[0]
			}
			pub, err := writeKeyPair(o, name)
			if err != nil {
				return err
			}
			if !o.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (public key %s)\n", filepath.Join(o.dir, name+".nk"), pub)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&o.dir, "key-dir", ".", "directory to write keys into")
	cmd.Flags().BoolVar(&o.force, "force", false, "overwrite existing key files")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "do not print the generated key")
	return cmd
}

var errKeyExists = errors.New("key file already exists (use --force to overwrite)")

func writeKeyPair(o keygenOptions, name string) (string, error) {
	seedPath := filepath.Join(o.dir, name+".nk")
	pubPath := filepath.Join(o.dir, name+".pub")
	if !o.force {
		for _, p := range []string{seedPath, pubPath} {
			if _, err := os.Stat(p); err == nil {
				return "", fmt.Errorf("%s: %w", p, errKeyExists)
			}
		}
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return "", err
	}

	s, err := signing.NewKeySigner()
	if err != nil {
		return "", err
	}
	seed, err := s.Seed()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(seedPath, append(seed, '\n'), 0o600); err != nil {
		return "", err
	}
	pub := string(s.PublicKey())
	if err := os.WriteFile(pubPath, []byte(pub+"\n"), 0o644); err != nil {
		return "", err
	}
	return pub, nil
}
