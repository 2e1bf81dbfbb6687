//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const templDir = "./internal/templates"

var binaries = map[string]string{
	"bin/employee-server": "./cmd/server",
	"bin/empctl":          "./cmd/empctl",
}

// Generate runs templ generate over the templates directory. Run it any time
// a .templ file changes; Build, Dev and Test depend on it.
func Generate() error {
	if _, err := exec.LookPath("templ"); err != nil {
		fmt.Println(">> templ not found; install with:")
		fmt.Println("   go install github.com/a-h/templ/cmd/templ@latest")
		return err
	}
	fmt.Println(">> templ generate", templDir)
	return sh.Run("templ", "generate", "-path", templDir)
}

// Build generates templ output, tidies deps, then compiles the server and
// the CLI into ./bin.
func Build() error {
	mg.Deps(Generate, Tidy)
	for out, pkg := range binaries {
		fmt.Println(">> Building", out)
		if err := sh.Run("go", "build", "-o", out, pkg); err != nil {
			return err
		}
	}
	return nil
}

// Run builds then executes the server binary.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :" + port() + " ...")
	return sh.Run("./bin/employee-server")
}

// Dev generates templates then starts the server via go run with an
// in-memory store unless STORE_DRIVER is already set.
func Dev() error {
	mg.Deps(Generate)
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	return devServer().Run()
}

// Watch runs templ generate --watch in the background and the server in the
// foreground. Ctrl-C stops both.
func Watch() error {
	mg.Deps(Generate)

	fmt.Println(">> Starting templ watcher...")
	watcher := exec.Command("templ", "generate", "--watch", "-path", templDir)
	watcher.Stdout = os.Stdout
	watcher.Stderr = os.Stderr
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start templ watcher: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := devServer()
	if err := server.Start(); err != nil {
		watcher.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	watcher.Process.Kill()
	return nil
}

func devServer() *exec.Cmd {
	cmd := exec.Command("go", "run", "./cmd/server")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PORT="+port(), "LOG_LEVEL=debug")
	if os.Getenv("STORE_DRIVER") == "" {
		cmd.Env = append(cmd.Env, "STORE_DRIVER=memory")
	}
	return cmd
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test generates templates then runs all unit tests. Set REDIS_ADDR to
// include the Redis adapter.
func Test() error {
	mg.Deps(Generate)
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.RemoveAll("bin")
	db := os.Getenv("DB_PATH")
	if db == "" {
		db = "employees.db"
	}
	return os.RemoveAll(db)
}

// Install installs both binaries to $GOPATH/bin.
func Install() error {
	for _, pkg := range binaries {
		if err := sh.Run("go", "install", pkg); err != nil {
			return err
		}
	}
	return nil
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
