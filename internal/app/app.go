package app

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/btcc-fantasy/league-engine/internal/config"
	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
	"github.com/btcc-fantasy/league-engine/internal/domain/entry"
	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/domain/profile"
	"github.com/btcc-fantasy/league-engine/internal/domain/raceresult"
	"github.com/btcc-fantasy/league-engine/internal/domain/scoring"
	"github.com/btcc-fantasy/league-engine/internal/domain/standing"
	"github.com/btcc-fantasy/league-engine/internal/infrastructure/repository/memory"
	"github.com/btcc-fantasy/league-engine/internal/infrastructure/repository/postgres"
	"github.com/btcc-fantasy/league-engine/internal/interfaces/httpapi"
	idgen "github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
	"github.com/btcc-fantasy/league-engine/internal/usecase"
)

type repositories struct {
	events    event.Repository
	results   raceresult.Repository
	entries   entry.Repository
	profiles  profile.Repository
	scores    scoring.Repository
	standings standing.Repository
	runs      audit.Repository
}

// NewHTTPServer wires the engine. An empty DB_URL selects the seeded
// in-memory store, used for local development and tests.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := idgen.NewRandomGenerator()

	scoreService := usecase.NewScoreService(
		repos.events, repos.results, repos.entries, repos.scores, repos.runs,
		ids, logger, cfg.WriteChunkSize, cfg.ScoreWorkers,
	)
	standingsService := usecase.NewStandingsService(
		repos.events, repos.scores, repos.profiles, repos.standings, repos.runs,
		ids, logger, cfg.WriteChunkSize, cfg.StandingsReadWorkers,
	)
	lockService := usecase.NewLockService(repos.events, repos.runs, ids, logger)

	handler := httpapi.NewHandler(scoreService, standingsService, lockService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminAPIToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("using in-memory store", "reason", "DB_URL empty")
		return repositories{
			events:    memory.NewEventRepository(memory.SeedEvents()),
			results:   memory.NewRaceResultRepository(memory.SeedResults()),
			entries:   memory.NewEntryRepository(memory.SeedEntries()),
			profiles:  memory.NewProfileRepository(memory.SeedProfiles()),
			scores:    memory.NewEventScoreRepository(),
			standings: memory.NewStandingRepository(),
			runs:      memory.NewRunRecordRepository(),
		}, nil
	}

	dbURL = normalizeDBURL(dbURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open database: %w", err)
	}

	logger.Info("using postgres store", "db", dbNameFromURL(dbURL))

	return repositories{
		events:    postgres.NewEventRepository(db),
		results:   postgres.NewRaceResultRepository(db),
		entries:   postgres.NewEntryRepository(db),
		profiles:  postgres.NewProfileRepository(db),
		scores:    postgres.NewEventScoreRepository(db),
		standings: postgres.NewStandingRepository(db),
		runs:      postgres.NewRunRecordRepository(db),
	}, nil
}
