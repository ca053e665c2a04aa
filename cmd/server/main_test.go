package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"gorm.io/gorm"

	"tripdeck/internal/config"
	"tripdeck/internal/server"
	"tripdeck/internal/views/theme"
)

type stubServer struct {
	startErr       error
	stopErr        error
	blockUntilStop bool

	startCalled bool
	stopCalled  bool

	startGate   chan struct{}
	startNotify chan struct{}
}

func newStubServer(startErr, stopErr error, block bool) *stubServer {
	s := &stubServer{
		startErr:       startErr,
		stopErr:        stopErr,
		blockUntilStop: block,
		startNotify:    make(chan struct{}),
	}
	if block {
		s.startGate = make(chan struct{})
	}
	return s
}

func (s *stubServer) Start() error {
	s.startCalled = true
	close(s.startNotify)
	if s.blockUntilStop {
		<-s.startGate
	}
	return s.startErr
}

func (s *stubServer) Stop() error {
	s.stopCalled = true
	if s.blockUntilStop {
		close(s.startGate)
	}
	return s.stopErr
}

// runStubs replaces every dependency of run for one test.
type runStubs struct {
	fixtureDB  *gorm.DB
	postgresDB *gorm.DB
	server     *stubServer
	signals    chan os.Signal

	fixtureCalls   int
	configureCalls int
	serverConfig   server.Config
}

func stubRun(t *testing.T, cfg config.Config) *runStubs {
	t.Helper()
	originalLoadConfig := loadConfigFunc
	originalSetLogLevel := setLogLevelFunc
	originalMock := newMockDatabaseFunc
	originalConfigure := configureDatabase
	originalNewServer := newServerFunc
	originalSubscribe := subscribeShutdownSig
	t.Cleanup(func() {
		loadConfigFunc = originalLoadConfig
		setLogLevelFunc = originalSetLogLevel
		newMockDatabaseFunc = originalMock
		configureDatabase = originalConfigure
		newServerFunc = originalNewServer
		subscribeShutdownSig = originalSubscribe
	})

	s := &runStubs{
		fixtureDB:  &gorm.DB{},
		postgresDB: &gorm.DB{},
		server:     newStubServer(http.ErrServerClosed, nil, true),
		signals:    make(chan os.Signal, 1),
	}
	loadConfigFunc = func() (config.Config, error) { return cfg, nil }
	setLogLevelFunc = func(string) error { return nil }
	newMockDatabaseFunc = func(context.Context) (*gorm.DB, error) {
		s.fixtureCalls++
		return s.fixtureDB, nil
	}
	configureDatabase = func(config.DatabaseConfig) (*gorm.DB, error) {
		s.configureCalls++
		return s.postgresDB, nil
	}
	newServerFunc = func(c server.Config) (serverLifecycle, error) {
		s.serverConfig = c
		return s.server, nil
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		return s.signals, func() {}
	}
	return s
}

// shutdownOnStart sends SIGTERM once the stub server is listening.
func (s *runStubs) shutdownOnStart() {
	go func() {
		<-s.server.startNotify
		s.signals <- syscall.SIGTERM
	}()
}

func TestRunWiresConfigIntoServer(t *testing.T) {
	base := config.Config{
		Server: config.ServerConfig{Addr: ":9090", AssetsDir: "public", ReadTimeout: 3 * time.Second},
		Database: config.DatabaseConfig{
			URL: "postgres://catalogue",
		},
		Logging: config.LoggingConfig{Level: "debug"},
		Session: config.SessionConfig{
			Lifetime:     time.Hour,
			CookieName:   "trip",
			CookieDomain: "example.test",
			CookieSecure: true,
		},
		Gallery: config.GalleryConfig{DefaultTheme: theme.Nature},
	}

	tests := []struct {
		name    string
		useMock bool
	}{
		{name: "fixture catalogue", useMock: true},
		{name: "postgres catalogue", useMock: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Database.UseMock = tt.useMock
			stubs := stubRun(t, cfg)
			stubs.shutdownOnStart()

			if code := run(context.Background()); code != 0 {
				t.Fatalf("expected exit code 0, got %d", code)
			}

			wantDB := stubs.postgresDB
			if tt.useMock {
				wantDB = stubs.fixtureDB
			}
			got := stubs.serverConfig
			if got.Database != wantDB {
				t.Fatal("expected the selected catalogue to reach the server")
			}
			if tt.useMock && (stubs.fixtureCalls != 1 || stubs.configureCalls != 0) {
				t.Fatalf("expected only the fixture catalogue, got fixture=%d configure=%d", stubs.fixtureCalls, stubs.configureCalls)
			}
			if !tt.useMock && (stubs.fixtureCalls != 0 || stubs.configureCalls != 1) {
				t.Fatalf("expected only postgres, got fixture=%d configure=%d", stubs.fixtureCalls, stubs.configureCalls)
			}
			if got.DefaultTheme != theme.Nature {
				t.Fatalf("expected default theme nature, got %q", got.DefaultTheme)
			}
			if got.Addr != ":9090" || got.AssetsDir != "public" || got.ReadHeaderTimeout != 3*time.Second {
				t.Fatalf("unexpected server settings %+v", got)
			}
			wantSession := server.SessionConfig{Lifetime: time.Hour, CookieName: "trip", CookieDomain: "example.test", CookieSecure: true}
			if got.Session != wantSession {
				t.Fatalf("expected session %+v, got %+v", wantSession, got.Session)
			}
			if !stubs.server.startCalled || !stubs.server.stopCalled {
				t.Fatal("expected server start and stop to be invoked")
			}
		})
	}
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	stubs := stubRun(t, config.Config{Database: config.DatabaseConfig{UseMock: true}})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-stubs.server.startNotify
		cancel()
	}()

	if code := run(ctx); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !stubs.server.stopCalled {
		t.Fatal("expected server stop on cancellation")
	}
}

func TestRunReturnsErrorWhenServerStartFails(t *testing.T) {
	stubs := stubRun(t, config.Config{Database: config.DatabaseConfig{UseMock: true}})
	stubs.server = newStubServer(errors.New("listener failure"), nil, false)

	if code := run(context.Background()); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stubs.server.stopCalled {
		t.Fatal("server stop should not be called on start error")
	}
}

func TestRunReturnsErrorWhenShutdownFails(t *testing.T) {
	stubs := stubRun(t, config.Config{Database: config.DatabaseConfig{UseMock: true}})
	stubs.server = newStubServer(http.ErrServerClosed, errors.New("deadline exceeded"), true)
	stubs.shutdownOnStart()

	if code := run(context.Background()); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunFailsBeforeServing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*runStubs)
	}{
		{
			name: "config",
			setup: func(*runStubs) {
				loadConfigFunc = func() (config.Config, error) { return config.Config{}, errors.New("bad env") }
			},
		},
		{
			name: "log level",
			setup: func(*runStubs) {
				setLogLevelFunc = func(string) error { return errors.New("invalid level") }
			},
		},
		{
			name: "database",
			setup: func(*runStubs) {
				configureDatabase = func(config.DatabaseConfig) (*gorm.DB, error) {
					return nil, errors.New("db connection refused")
				}
			},
		},
		{
			name: "server",
			setup: func(*runStubs) {
				newServerFunc = func(server.Config) (serverLifecycle, error) {
					return nil, errors.New("bad handler chain")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubs := stubRun(t, config.Config{Database: config.DatabaseConfig{URL: "postgres://catalogue"}})
			tt.setup(stubs)

			if code := run(context.Background()); code != 1 {
				t.Fatalf("expected exit code 1, got %d", code)
			}
			if stubs.server.startCalled {
				t.Fatal("server must not start after a setup failure")
			}
		})
	}
}
