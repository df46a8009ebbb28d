package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/infra/httpclient"
	"github.com/aalvaropc/formdraft/internal/infra/kvstore"
	"github.com/aalvaropc/formdraft/internal/infra/logger"
	"github.com/aalvaropc/formdraft/internal/infra/workspacefinder"
	"github.com/aalvaropc/formdraft/internal/ports"
	"github.com/aalvaropc/formdraft/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config
	log  *slog.Logger

	store   kvstore.Store
	session *usecase.FormSession
}

// openWorkspace resolves the workspace, sets up logging, opens storage and restores the session.
// console, when non-nil, also receives log records.
func openWorkspace(g *globalFlags, console io.Writer) (*workspaceCtx, func(), error) {
	root, err := resolveWorkspaceRoot(g.workspace)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, nil, err
	}

	logCleanup, _ := logger.Setup(logger.Config{
		Root:    root,
		Debug:   g.debug,
		Console: console,
	})
	log := logger.L()
	if err != nil {
		log.Debug("config.defaults", "root", root, "err", err)
	}

	store, err := kvstore.Open(root, cfg.Storage)
	if err != nil {
		if logCleanup != nil {
			_ = logCleanup()
		}
		return nil, nil, err
	}

	submitter := httpclient.NewSubmitter(
		cfg.Client.Endpoint,
		httpclient.WithExecutor(httpclient.NewExecutor(
			httpclient.WithClient(httpclient.New(httpclient.ConfigFrom(cfg.Client))),
		)),
		httpclient.WithLogger(log),
	)

	session := usecase.NewFormSession(store, submitter,
		usecase.WithLogger(log),
		usecase.WithSuccessTTL(cfg.Notice.SuccessTTL),
	)

	ws := &workspaceCtx{
		root:    root,
		cfg:     cfg,
		log:     log,
		store:   store,
		session: session,
	}

	cleanup := func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn("store.close.failed", "err", cerr)
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	}
	return ws, cleanup, nil
}

// resolveWorkspaceRoot returns the explicit workspace, the nearest directory holding
// formdraft.yaml, or the working directory when none is found.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return filepath.Abs(wd)
		}
		return "", err
	}
	return root, nil
}
