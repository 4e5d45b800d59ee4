// scripts/issue-token/main.go
//
// Issues a bearer token for a user so the JSON-RPC endpoint can be called
// with a user scope. Signs with auth.jwt_secret from config.yaml.
//
// Usage:
//   go run scripts/issue-token/main.go <user_id> <username> [role]
//
// role defaults to app-user.

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"taskboard-api/config"
	"taskboard-api/internal/model"
	"taskboard-api/pkg/scope"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <user_id> <username> [role]", os.Args[0])
	}

	userID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil || userID <= 0 {
		log.Fatalf("Invalid user id %q", os.Args[1])
	}

	role := model.RoleAppUser
	if len(os.Args) > 3 {
		role = os.Args[3]
	}
	switch role {
	case model.RoleAppAdmin, model.RoleAppManager, model.RoleAppUser:
	default:
		log.Fatalf("Unknown role %q", role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	manager, err := scope.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	token, err := manager.CreateToken(scope.Payload{UserID: userID, Username: os.Args[2], Role: role})
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "Token for %s (id %d, %s), valid for %s\n", os.Args[2], userID, role, cfg.Auth.TokenTTL)
}
