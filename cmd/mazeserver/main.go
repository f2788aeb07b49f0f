package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/VHN27/Pacman/internal/feed"
	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	"github.com/VHN27/Pacman/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const (
	host string = "0.0.0.0"

	defaultSSHPort  = "6996"
	defaultFeedPort = "8080"

	maxConnectionsPerIP = 2
)

var (
	ipCounter = make(map[string]int)
	ipMutex   sync.Mutex
)

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// acquireIP counts a new session for ip, unless ip already holds the maximum.
func acquireIP(ip string) (int, bool) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	if ipCounter[ip] >= maxConnectionsPerIP {
		return ipCounter[ip], false
	}
	ipCounter[ip]++
	return ipCounter[ip], true
}

func releaseIP(ip string) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]--
	if ipCounter[ip] <= 0 {
		delete(ipCounter, ip)
	}
}

func connectionLimiterMiddleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)
		count, ok := acquireIP(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", maxConnectionsPerIP)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, maxConnectionsPerIP)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}
		defer releaseIP(ip)

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", maxConnectionsPerIP)
		next(s)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openArchive() (store.Storage, error) {
	dbType := os.Getenv("DB_TYPE")
	dsn := os.Getenv("DATABASE_URL")
	if dbType != "postgres" {
		dsn = getenv("DB_FILE", store.DefaultSqlitePath)
	} else if dsn == "" {
		dsn = store.DefaultPostgresDSN
	}
	return store.Open(dbType, dsn)
}

func main() {
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	cat, err := catalog.LoadDefault()
	if path := os.Getenv("MAZE_CATALOG"); path != "" {
		cat, err = catalog.LoadFile(path)
	}
	if err != nil {
		log.Fatal("Failed to load piece catalog", "error", err)
	}
	gen, err := maze.NewGenerator(cat, maze.NewConfig(), log.Default())
	if err != nil {
		log.Fatal("Failed to create generator", "error", err)
	}

	archive, err := openArchive()
	if err != nil {
		log.Fatal("Failed to open maze archive", "error", err)
	}
	defer archive.Close()

	viewHandler := func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		controllerModel := ui.NewControllerModel(sshSession.Context(), gen, archive, pty.Window.Width, pty.Window.Height)
		return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
	}

	sshAddr := host + ":" + getenv("SSH_PORT", defaultSSHPort)
	sshServer, serverCreateErr := wish.NewServer(
		wish.WithAddress(sshAddr),
		wish.WithHostKeyPath(getenv("MAZE_PRIVATE_KEY_PATH", ".ssh/id_ed25519")),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			connectionLimiterMiddleware,
		),
	)
	if serverCreateErr != nil {
		log.Fatal("Failed to create ssh server", "error", serverCreateErr)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", feed.NewHandler(gen, archive))
	feedServer := &http.Server{
		Addr:              host + ":" + getenv("PORT", defaultFeedPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", sshAddr)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start ssh server", "error", err)
			serverDoneChannel <- nil
		}
	}()
	log.Info("Starting maze feed", "addr", feedServer.Addr)
	go func() {
		if err := feedServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Could not start maze feed", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping servers")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop ssh server", "error", err)
	}
	if err := feedServer.Shutdown(ctx); err != nil {
		log.Error("Could not stop maze feed", "error", err)
	}
}
