package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/allisson/tasks/internal/app"
	"github.com/allisson/tasks/internal/config"
	userDomain "github.com/allisson/tasks/internal/user/domain"
	userUseCase "github.com/allisson/tasks/internal/user/usecase"
)

// RunCreateUser creates a new user account from the command line.
// Prompts for the password when not supplied as a flag. Outputs the user id
// and username in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(ctx context.Context, username, password, format string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	userUC, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	return CreateUser(ctx, userUC, logger, username, password, format, DefaultIO())
}

// CreateUser performs the user creation with injected dependencies, allowing for testing.
func CreateUser(
	ctx context.Context,
	userUC userUseCase.UseCase,
	logger *slog.Logger,
	username, password, format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	if password == "" {
		// Interactive mode
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
	}

	user, err := userUC.Register(ctx, userUseCase.RegisterUserInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputUserJSON(user, io.Writer)
	} else {
		outputUserText(user, io.Writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}

// promptForPassword interactively prompts the user to enter a password.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)
	writer := io.Writer

	_, _ = fmt.Fprint(writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// outputUserText outputs the result in human-readable text format.
func outputUserText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
}

// outputUserJSON outputs the result in JSON format for machine consumption.
func outputUserJSON(user *userDomain.User, writer io.Writer) {
	result := map[string]string{
		"user_id":  user.ID.String(),
		"username": user.Username,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
