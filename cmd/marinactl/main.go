// marinactl is an operator tool: it creates the first account directly in
// the database so the web application has someone to log in as.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"portrussell/internal/server/auth"
	"portrussell/internal/server/models"
	"portrussell/internal/server/repositories/repomanager"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func promptPassword() (string, error) {
	fmt.Print("Mot de passe: ")
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run(ctx context.Context, dsn, username, email string, migrate bool) error {
	if dsn == "" || username == "" || email == "" {
		return fmt.Errorf("usage: marinactl -d <dsn> -u <username> -e <email> [-m]")
	}

	password, err := promptPassword()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return err
	}

	if migrate {
		if err := rm.RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
	}

	user, err := rm.Users(db).Create(ctx, &models.User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Utilisateur créé: %s <%s>\n", user.Username, user.Email)
	return nil
}

func main() {
	dsn := flag.String("d", os.Getenv("DATABASE_DSN"), "database DSN")
	username := flag.String("u", "", "username")
	email := flag.String("e", "", "email address")
	migrate := flag.Bool("m", false, "run schema migrations first")
	flag.Parse()

	if err := run(context.Background(), *dsn, *username, *email, *migrate); err != nil {
		log.Fatal(err)
	}
}
