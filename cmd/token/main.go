// Command token mints an access token for local development, signed with the
// configured secret so the server accepts it.
//
// Usage:
//
//	token --user=<uuid> [--role=creator|admin]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/auth"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

func main() {
	user := flag.String("user", "", "user ID to put in the subject claim")
	role := flag.String("role", string(domain.UserRoleCreator), "role claim: creator or admin")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid> [--role=creator|admin]")
		os.Exit(1)
	}

	r := domain.UserRole(*role)
	if r != domain.UserRoleCreator && r != domain.UserRoleAdmin {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL).
		GenerateAccessToken(userID, r)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
