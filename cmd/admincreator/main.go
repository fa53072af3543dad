// Command admincreator seeds the single admin account. The API itself has no
// signup route, so this is the only way an admin user gets created.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/restauranthjort/hjort-api/internal/config"
	"github.com/restauranthjort/hjort-api/internal/db"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
)

// passwordRule wants at least 8 characters with at least one letter and one
// digit. regexp2 is used because Go's regexp has no lookaheads.
var passwordRule = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d).{8,}$`, regexp2.None)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "admincreator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	username, err := prompt(reader, "Username")
	if err != nil {
		return err
	}

	password, err := prompt(reader, "Password")
	if err != nil {
		return err
	}
	if ok, _ := passwordRule.MatchString(password); !ok {
		return errors.New("password must be at least 8 characters and contain a letter and a digit")
	}

	email, err := prompt(reader, "Email")
	if err != nil {
		return err
	}

	firstName, err := prompt(reader, "First name")
	if err != nil {
		return err
	}

	lastName, err := prompt(reader, "Last name")
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	adminDAO := dao.NewAdminUserDAO(postgresDB)
	err = adminDAO.Insert(context.Background(), dao.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
	})
	if err != nil {
		if errors.Is(err, dao.ErrUsernameTaken) {
			return fmt.Errorf("an admin user named %q already exists", username)
		}

		return fmt.Errorf("adminDAO.Insert -> %w", err)
	}

	fmt.Printf("Created admin user %q.\n", username)

	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read %v -> %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%v must not be empty", strings.ToLower(label))
	}

	return value, nil
}
