package commands

import (
	"fmt"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/errors"
	"menuboard/internal/infra/auth"
	"menuboard/internal/util"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRoles   []string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin panel token",
	Long: `Sign a bearer token for the admin endpoints with secretKey.access.

The token is printed on stdout so it can be captured; its lifetime goes to stderr.

Examples:
  menuctl token --subject ana
  menuctl token --subject kitchen --role staff --ttl 8h`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runToken(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "", "Who the token is issued to")
	tokenCmd.Flags().StringSliceVarP(&tokenRoles, "role", "r", []string{string(entity.RoleAdmin)}, "Granted roles (admin, staff)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (defaults to auth.defaultTokenTtl)")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command) error {
	roles, err := parseRoles(tokenRoles)
	if err != nil {
		return err
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	ttl := tokenTTL
	if ttl <= 0 {
		ttl = env.cfg.Auth.DefaultTokenTTL
	}

	tokenSvc, err := auth.NewJWTService(env.cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateToken(tokenSubject, roles.ToStrings(), ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "Token for %s expires in %s\n", tokenSubject, util.FormatDuration(ttl))

	return nil
}

// parseRoles rejects unknown role names instead of minting a token nobody can use.
func parseRoles(raw []string) (entity.Roles, error) {
	if len(raw) == 0 {
		return nil, errors.New("at least one role is required")
	}

	for _, name := range raw {
		if !entity.Role(name).IsValid() {
			return nil, errors.Errorf("unknown role %q", name)
		}
	}

	return entity.RolesFromStrings(raw), nil
}
