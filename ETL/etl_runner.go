package etl

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/acamposh/horarios_olap/ETL/config"
	"github.com/acamposh/horarios_olap/ETL/extractors"
	"github.com/acamposh/horarios_olap/ETL/load"
	"github.com/acamposh/horarios_olap/ETL/models"
	"github.com/acamposh/horarios_olap/ETL/transform"
	"github.com/acamposh/horarios_olap/ETL/utils"
)

// Runner coordina el pipeline completo: Extract (PDF), Transform
// (esquema estrella) y Load (MySQL). Cada ejecución reconstruye todo
// desde cero; no hay cargas incrementales.
type Runner struct {
	config      config.ETLConfig
	db          *sql.DB
	logger      *utils.ETLLogger
	extractor   *extractors.Extractor
	transformer *transform.Transformer
	loadManager *load.LoadManager
	logRepo     models.ETLLogRepository
}

// NewRunner crea un Runner sobre una conexión ya establecida
func NewRunner(cfg config.ETLConfig, db *sql.DB, logger *utils.ETLLogger) (*Runner, error) {
	logRepo := models.NewMySQLETLLogRepository(db)

	// El journal de ejecuciones se crea una sola vez
	if err := logRepo.CreateETLLogTable(); err != nil {
		return nil, fmt.Errorf("error al crear la tabla del journal ETL: %w", err)
	}

	source := extractors.NewCachedSource(extractors.NewTabulaSource(), cfg.CacheDir, logger)

	return &Runner{
		config:      cfg,
		db:          db,
		logger:      logger,
		extractor:   extractors.NewExtractor(source, logger, cfg.PDFDir),
		transformer: transform.NewTransformer(logger),
		loadManager: load.NewLoadManager(db, logger),
		logRepo:     logRepo,
	}, nil
}

// Execute corre el pipeline completo una vez
func (r *Runner) Execute() error {
	startTime := time.Now()
	runID := uuid.NewString()
	r.logger.LogETLStart(runID)

	if err := r.logRepo.CreateLogEntry(runID, startTime); err != nil {
		r.logger.Error("Error al crear la entrada del journal ETL: %v", err)
		return err
	}

	// 1. Fase Extract
	raw, err := r.extractor.Extract()
	if err != nil {
		return r.registrarFallo(runID, fmt.Errorf("error en la fase Extract: %w", err))
	}

	// 2. Fase Transform
	data, err := r.transformer.Transform(raw)
	if err != nil {
		return r.registrarFallo(runID, fmt.Errorf("error en la fase Transform: %w", err))
	}
	data.Metadata.RunID = runID

	// 3. Fase Load
	if err := r.loadManager.Load(data); err != nil {
		return r.registrarFallo(runID, fmt.Errorf("error en la fase Load: %w", err))
	}

	if err := r.logRepo.UpdateLogEntrySuccess(runID, time.Now(),
		data.Metadata.FilasExtraidas, data.Metadata.FilasCuradas, len(data.Hechos)); err != nil {
		r.logger.Error("Error al cerrar la entrada del journal ETL: %v", err)
	}

	r.logger.LogETLComplete(startTime, data.Metadata.FilasExtraidas,
		data.Metadata.FilasCuradas, len(data.Hechos))
	return nil
}

// registrarFallo marca la ejecución como fallida en el journal y
// devuelve el error original
func (r *Runner) registrarFallo(runID string, err error) error {
	r.logger.Error("%v", err)
	if logErr := r.logRepo.UpdateLogEntryFailure(runID, time.Now(), err.Error()); logErr != nil {
		r.logger.Error("Error al registrar el fallo en el journal ETL: %v", logErr)
	}
	return err
}

// StartScheduler ejecuta el pipeline periódicamente hasta que el
// contexto se cancele. Tras cada corrida exitosa invoca onSuccess (ahí
// el cubo se reconstruye y se publica el nuevo snapshot).
func (r *Runner) StartScheduler(ctx context.Context, onSuccess func()) {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Planificador ETL con intervalo %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Ejecución planificada del pipeline")
		if err := r.Execute(); err != nil {
			r.logger.Error("Error en la ejecución planificada: %v", err)
			return
		}
		if onSuccess != nil {
			onSuccess()
		}
	})
	if err != nil {
		r.logger.Error("Error al configurar el planificador: %v", err)
		return
	}

	scheduler.StartAsync()

	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("Planificador ETL detenido")
}
