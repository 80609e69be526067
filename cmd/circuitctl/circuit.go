package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/devghori1264/aerophoenix/circuitd/internal/models"
	"github.com/devghori1264/aerophoenix/circuitd/internal/proto"
)

func newCircuitCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circuit",
		Short: "Propose, vote on and inspect circuits",
	}
	cmd.AddCommand(
		newDefinitionCmd(c, "create", "Propose a new circuit", func(circuit *models.Circuit) proto.Body {
			return &proto.CircuitCreateRequest{Circuit: proto.CircuitToProto(circuit)}
		}),
		newDefinitionCmd(c, "join", "Adopt a circuit definition agreed elsewhere", func(circuit *models.Circuit) proto.Body {
			return &proto.CircuitJoinRequest{Circuit: proto.CircuitToProto(circuit)}
		}),
		newVoteCmd(c),
		newAddNodeCmd(c),
		newRemoveNodeCmd(c),
		newUpdateRosterCmd(c),
		newSetMetadataCmd(c),
		newSimpleCmd(c, "destroy", "Propose destroying a circuit", func(id string) proto.Body {
			return &proto.CircuitDestroyRequest{CircuitId: id}
		}),
		newSimpleCmd(c, "abandon", "Leave a circuit unilaterally", func(id string) proto.Body {
			return &proto.CircuitAbandon{CircuitId: id}
		}),
		newListCmd(c),
		newShowCmd(c),
		newProposalsCmd(c),
	)
	return cmd
}

func newDefinitionCmd(c *cli, use, short string, body func(*models.Circuit) proto.Body) *cobra.Command {
	var cs circuitFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cs.id == "" {
				cs.id = uuid.NewString()
			}
			circuit, err := cs.build()
			if err != nil {
				return err
			}
			return c.submit(cmd, body(circuit))
		},
	}
	f := cmd.Flags()
	f.StringVar(&cs.id, "id", "", "circuit id (random if empty)")
	f.StringArrayVar(&cs.members, "member", nil, "member as node_id=endpoint (repeatable)")
	f.StringArrayVar(&cs.services, "service", nil, "service as id:type:node[,node][:key=value;...] (repeatable)")
	f.StringVar(&cs.managementType, "management-type", "", "circuit management type")
	f.StringVar(&cs.metadata, "metadata", "", "opaque application metadata")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}

func newSimpleCmd(c *cli, use, short string, body func(id string) proto.Body) *cobra.Command {
	return &cobra.Command{
		Use:   use + " CIRCUIT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, body(args[0]))
		},
	}
}

func newVoteCmd(c *cli) *cobra.Command {
	var hash string
	cmd := &cobra.Command{
		Use:   "vote CIRCUIT_ID accept|reject",
		Short: "Vote on the outstanding proposal for a circuit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVote(args[1])
			if err != nil {
				return err
			}
			if hash == "" {
				p, err := c.findProposal(cmd, args[0])
				if err != nil {
					return err
				}
				hash = p.CircuitHash
			}
			return c.submit(cmd, &proto.CircuitProposalVote{CircuitId: args[0], CircuitHash: hash, Vote: proto.Vote(v)})
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "circuit hash being voted on (looked up if empty)")
	return cmd
}

func newAddNodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add-node CIRCUIT_ID NODE_ID=ENDPOINT",
		Short: "Propose adding a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseMember(args[1])
			if err != nil {
				return err
			}
			return c.submit(cmd, &proto.CircuitUpdateAddNodeRequest{CircuitId: args[0], Node: proto.NodeToProto(&n)})
		},
	}
}

func newRemoveNodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-node CIRCUIT_ID NODE_ID",
		Short: "Propose removing a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, &proto.CircuitUpdateRemoveNodeRequest{CircuitId: args[0], NodeId: args[1]})
		},
	}
}

func newUpdateRosterCmd(c *cli) *cobra.Command {
	var add, remove []string
	cmd := &cobra.Command{
		Use:   "update-roster CIRCUIT_ID",
		Short: "Propose adding or removing services",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &proto.CircuitUpdateRosterRequest{CircuitId: args[0]}
			for _, s := range add {
				svc, err := parseService(s)
				if err != nil {
					return err
				}
				req.AddServices = append(req.AddServices, proto.ServiceToProto(&svc))
			}
			for _, id := range remove {
				req.RemoveServices = append(req.RemoveServices, &proto.Service{ServiceId: id})
			}
			if len(req.AddServices) == 0 && len(req.RemoveServices) == 0 {
				return fmt.Errorf("nothing to change: pass --add or --remove")
			}
			return c.submit(cmd, req)
		},
	}
	cmd.Flags().StringArrayVar(&add, "add", nil, "service to add as id:type:node[,node][:key=value;...]")
	cmd.Flags().StringArrayVar(&remove, "remove", nil, "service id to remove")
	return cmd
}

func newSetMetadataCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set-metadata CIRCUIT_ID METADATA",
		Short: "Propose replacing the application metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, &proto.CircuitUpdateApplicationMetadataRequest{
				CircuitId:           args[0],
				ApplicationMetadata: []byte(args[1]),
			})
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	var member string
	var offset, limit uint32
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List committed circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closeFn, err := c.client()
			if err != nil {
				return err
			}
			defer closeFn()
			ctx, cancel := c.context(cmd.Context())
			defer cancel()
			res, err := client.ListCircuits(ctx, &proto.ListCircuitsRequest{Filter: member, Offset: offset, Limit: limit})
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tMANAGEMENT\tMEMBERS")
			for _, pc := range res.GetCircuits() {
				circuit := proto.CircuitFromProto(pc)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", circuit.CircuitID, circuit.Status,
					circuit.CircuitManagementType, strings.Join(circuit.MemberIDs(), ","))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			pg := res.GetPaging()
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d circuits (offset %d, limit %d)\n",
				len(res.GetCircuits()), pg.GetTotal(), pg.GetOffset(), pg.GetLimit())
			if pg.GetNextOffset() > pg.GetOffset() {
				fmt.Fprintf(cmd.OutOrStdout(), "next page: --offset %d\n", pg.GetNextOffset())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&member, "member", "", "only circuits with this member")
	cmd.Flags().Uint32Var(&offset, "offset", 0, "skip this many circuits")
	cmd.Flags().Uint32Var(&limit, "limit", 0, "return at most this many circuits (0 for the server default)")
	return cmd
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show CIRCUIT_ID",
		Short: "Print a committed circuit as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeFn, err := c.client()
			if err != nil {
				return err
			}
			defer closeFn()
			ctx, cancel := c.context(cmd.Context())
			defer cancel()
			res, err := client.GetCircuit(ctx, &proto.GetCircuitRequest{CircuitId: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, proto.CircuitFromProto(res.GetCircuit()))
		},
	}
}

func newProposalsCmd(c *cli) *cobra.Command {
	var member string
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "List outstanding proposals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, closeFn, err := c.client()
			if err != nil {
				return err
			}
			defer closeFn()
			ctx, cancel := c.context(cmd.Context())
			defer cancel()
			res, err := client.ListProposals(ctx, &proto.ListProposalsRequest{Filter: member})
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CIRCUIT\tTYPE\tREQUESTER\tVOTES\tHASH")
			for _, pp := range res.GetProposals() {
				p := proto.ProposalFromProto(pp)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.CircuitID, p.ProposalType, p.RequesterNodeID, formatVotes(p.Votes), p.CircuitHash)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&member, "member", "", "only proposals whose circuit has this member")
	return cmd
}

func (c *cli) findProposal(cmd *cobra.Command, circuitID string) (*models.CircuitProposal, error) {
	client, closeFn, err := c.client()
	if err != nil {
		return nil, err
	}
	defer closeFn()
	ctx, cancel := c.context(cmd.Context())
	defer cancel()
	res, err := client.ListProposals(ctx, &proto.ListProposalsRequest{})
	if err != nil {
		return nil, err
	}
	for _, p := range res.GetProposals() {
		if p.GetCircuitId() == circuitID {
			return proto.ProposalFromProto(p), nil
		}
	}
	return nil, fmt.Errorf("no outstanding proposal for circuit %s", circuitID)
}

func formatVotes(votes []models.VoteRecord) string {
	if len(votes) == 0 {
		return "-"
	}
	out := make([]string, len(votes))
	for i, v := range votes {
		out[i] = v.VoterNodeID + "=" + strings.ToLower(v.Vote.String())
	}
	return strings.Join(out, ",")
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
