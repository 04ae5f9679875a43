package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/cookbook-backend/internal/domain"
	"github.com/heartmarshall/cookbook-backend/internal/service/merge"
	"github.com/heartmarshall/cookbook-backend/internal/service/moderation"
	"github.com/heartmarshall/cookbook-backend/internal/service/orphan"
	"github.com/heartmarshall/cookbook-backend/pkg/ctxutil"
)

// withServices opens the services, runs fn as an admin acting for --actor,
// and releases the services afterwards.
func withServices(cmd *cobra.Command, opts *RootOptions, env Env, fn func(ctx context.Context, s *Services) (any, error)) error {
	actorID, err := opts.requireActor()
	if err != nil {
		return err
	}

	ctx := ctxutil.WithAdmin(cmd.Context(), actorID)
	svc, closeFn, err := env.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := fn(ctx, svc)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", cmd.Name(), domain.KindOf(err), err)
	}
	return render(cmd.OutOrStdout(), opts.Format, out)
}

func newApproveCommand(opts *RootOptions, env Env) *cobra.Command {
	var newName string

	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending entity, optionally renaming it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			input := moderation.ApproveInput{ID: id}
			if cmd.Flags().Changed("name") {
				input.NewName = &newName
			}
			return withServices(cmd, opts, env, func(ctx context.Context, s *Services) (any, error) {
				mod, _ := s.forKind(opts.kind)
				return mod.Approve(ctx, input)
			})
		},
	}
	cmd.Flags().StringVar(&newName, "name", "", "rename the entity while approving")
	return cmd
}

func newRejectCommand(opts *RootOptions, env Env) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject and delete a pending entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, opts, env, func(ctx context.Context, s *Services) (any, error) {
				mod, _ := s.forKind(opts.kind)
				if err := mod.Reject(ctx, moderation.RejectInput{ID: id, Reason: reason}); err != nil {
					return nil, err
				}
				return map[string]string{"rejected": id.String()}, nil
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason shown to the creator (required)")
	return cmd
}

func newMergeCommand(opts *RootOptions, env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <source-id> <target-id>",
		Short: "Merge a duplicate entity into its canonical target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := parseID("source", args[0])
			if err != nil {
				return err
			}
			target, err := parseID("target", args[1])
			if err != nil {
				return err
			}
			return withServices(cmd, opts, env, func(ctx context.Context, s *Services) (any, error) {
				_, m := s.forKind(opts.kind)
				return m.Merge(ctx, merge.MergeInput{SourceID: source, TargetID: target})
			})
		},
	}
}

func newDepartureCommand(opts *RootOptions, env Env) *cobra.Command {
	var contributor, community string

	cmd := &cobra.Command{
		Use:   "departure",
		Short: "Run the orphan cascade for a contributor who left a community",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contributorID, err := parseID("contributor", contributor)
			if err != nil {
				return err
			}
			communityID, err := parseID("community", community)
			if err != nil {
				return err
			}
			return withServices(cmd, opts, env, func(ctx context.Context, s *Services) (any, error) {
				return s.Orphans.HandleDeparture(ctx, orphan.DepartureInput{
					ContributorID: contributorID,
					CommunityID:   communityID,
				})
			})
		},
	}
	cmd.Flags().StringVar(&contributor, "contributor", "", "departed contributor user id")
	cmd.Flags().StringVar(&community, "community", "", "community id")
	return cmd
}

func newTokenCommand(opts *RootOptions, env Env) *cobra.Command {
	var (
		user string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID("user", user)
			if err != nil {
				return err
			}
			r := domain.UserRole(role)
			if !r.IsValid() {
				return fmt.Errorf("invalid role %q", role)
			}
			issuer, err := env.Issuer()
			if err != nil {
				return err
			}
			token, err := issuer.Issue(userID, r, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			return render(cmd.OutOrStdout(), opts.Format, map[string]string{"token": token})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleUser), "platform role (user|admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}

func parseID(name, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// render prints v as indented JSON or as a short human summary.
func render(w io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	switch x := v.(type) {
	case *domain.CatalogEntity:
		_, err := fmt.Fprintf(w, "%s %s %q %s\n", x.Kind, x.ID, x.Name, x.Status)
		return err
	case *merge.MergeResult:
		_, err := fmt.Fprintf(w, "merged into %s %q: %d migrated, %d deduplicated\n",
			x.Target.ID, x.Target.Name, x.Migrated, x.Deduplicated)
		return err
	case orphan.DepartureResult:
		_, err := fmt.Fprintf(w, "%d recipes processed, %d proposals auto-rejected, %d variants created\n",
			x.ProcessedRecipes, x.AutoRejectedProposals, x.CreatedVariants)
		return err
	case map[string]string:
		for k, val := range x {
			if _, err := fmt.Fprintf(w, "%s: %s\n", k, val); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%v\n", v)
	return err
}
