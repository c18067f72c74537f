// The cli binary handles operational chores: seeding the system categories
// and promoting users to admin.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/amirasaad/fintrack/infra/initializer"
	"github.com/amirasaad/fintrack/pkg/config"
	"github.com/amirasaad/fintrack/pkg/domain"
	"github.com/amirasaad/fintrack/pkg/repository"
	"github.com/amirasaad/fintrack/pkg/service"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var systemCategories = []struct {
	Name string
	Type domain.CategoryType
	Icon string
}{
	{"Salary", domain.CategoryTypeIncome, "💰"},
	{"Investments", domain.CategoryTypeIncome, "📈"},
	{"Groceries", domain.CategoryTypeExpense, "🛒"},
	{"Rent", domain.CategoryTypeExpense, "🏠"},
	{"Utilities", domain.CategoryTypeExpense, "💡"},
	{"Transport", domain.CategoryTypeExpense, "🚌"},
	{"Dining", domain.CategoryTypeExpense, "🍽️"},
	{"Health", domain.CategoryTypeExpense, "🩺"},
	{"Entertainment", domain.CategoryTypeExpense, "🎬"},
	{"Savings", domain.CategoryTypeTransfer, "🏦"},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  seed-categories            create the default system categories")
		fmt.Println("  promote-admin <identity>   grant the ADMIN role to a user")
		fmt.Println("  register <username> <email>  create a user (prompts for password)")
		fmt.Println("  reset-password <identity>  set a new password for a user")
		os.Exit(1)
	}

	cfg, err := config.Load(slog.Default())
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		color.Red("Failed to initialize dependencies: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "seed-categories":
		err = seedCategories(ctx, deps.Uow, deps.Logger)
	case "promote-admin":
		if len(os.Args) < 3 {
			err = errors.New("usage: promote-admin <username or email>")
			break
		}
		err = promoteAdmin(ctx, deps.Uow, deps.Logger, os.Args[2])
	case "register":
		if len(os.Args) < 4 {
			err = errors.New("usage: register <username> <email>")
			break
		}
		err = register(ctx, deps.Uow, deps.Logger, os.Args[2], os.Args[3])
	case "reset-password":
		if len(os.Args) < 3 {
			err = errors.New("usage: reset-password <username or email>")
			break
		}
		err = resetPassword(ctx, deps.Uow, deps.Logger, os.Args[2])
	default:
		err = fmt.Errorf("unknown command: %s", os.Args[1])
	}
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func seedCategories(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger) error {
	svc := service.NewCategoryService(uow, logger)
	var created, skipped int
	for _, c := range systemCategories {
		_, err := svc.CreateSystemCategory(ctx, service.CreateCategoryInput{
			Name: c.Name,
			Type: c.Type,
			Icon: c.Icon,
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			skipped++
		case err != nil:
			return fmt.Errorf("seeding %q: %w", c.Name, err)
		default:
			created++
		}
	}
	color.Green("System categories seeded: %d created, %d already present", created, skipped)
	return nil
}

func findUser(ctx context.Context, uow repository.UnitOfWork, identity string) (*domain.User, error) {
	users, err := uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := users.GetByEmail(ctx, identity)
	if errors.Is(err, domain.ErrUserNotFound) {
		u, err = users.GetByUsername(ctx, identity)
	}
	return u, err
}

func promoteAdmin(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger, identity string) error {
	u, err := findUser(ctx, uow, identity)
	if err != nil {
		return err
	}

	svc := service.NewUserService(uow, logger)
	if _, err := svc.UpdateRole(ctx, u.ID, domain.RoleAdmin); err != nil {
		return err
	}
	color.Green("User %s (%s) promoted to ADMIN", u.Username, u.Email)
	return nil
}

func register(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger, username, email string) error {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	svc := service.NewUserService(uow, logger)
	u, err := svc.Register(ctx, username, email, string(password))
	if err != nil {
		return err
	}
	color.Green("User %s registered (id %s)", u.Username, u.ID)
	return nil
}

func resetPassword(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger, identity string) error {
	u, err := findUser(ctx, uow, identity)
	if err != nil {
		return err
	}

	fmt.Print("New password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	svc := service.NewUserService(uow, logger)
	newPassword := string(password)
	if _, err := svc.Update(ctx, u.ID, service.UpdateUserInput{Password: &newPassword}); err != nil {
		return err
	}
	color.Green("Password updated for %s", u.Username)
	return nil
}
