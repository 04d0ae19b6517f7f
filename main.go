// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	etl "github.com/acamposh/horarios_olap/ETL"
	"github.com/acamposh/horarios_olap/ETL/config"
	"github.com/acamposh/horarios_olap/ETL/utils"
	"github.com/acamposh/horarios_olap/cube"
	"github.com/acamposh/horarios_olap/web"
)

func main() {
	runETL := flag.Bool("etl", false, "ejecutar el pipeline ETL una vez al arrancar")
	serve := flag.Bool("serve", true, "levantar el servidor web del cubo")
	scheduled := flag.Bool("scheduled", false, "ejecutar el pipeline periódicamente")
	flag.Parse()

	fmt.Println("Iniciando el cubo de horarios...")

	cfg := config.GetConfig()
	logger := utils.NewETLLogger(cfg.EnableDetailedLogging)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Error("No se pudo conectar a la base de datos: %v", err)
		os.Exit(1)
	}
	defer config.CloseDatabase(db)

	runner, err := etl.NewRunner(cfg, db, logger)
	if err != nil {
		logger.Error("No se pudo crear el runner ETL: %v", err)
		os.Exit(1)
	}

	if *runETL {
		if err := runner.Execute(); err != nil {
			logger.Error("El pipeline ETL terminó con error: %v", err)
			os.Exit(1)
		}
	}

	// El cubo se construye al arranque con lo que haya en la base; si el
	// esquema está vacío el snapshot inicial simplemente no tiene filas
	snapshot, err := cube.BuildFromDB(db)
	if err != nil {
		logger.Error("No se pudo construir el cubo inicial: %v", err)
		os.Exit(1)
	}
	holder := cube.NewHolder(snapshot)
	logger.Info("Cubo inicial con %d filas", len(snapshot.Rows))

	// La reconstrucción completa corre el pipeline y publica el snapshot
	// nuevo; la comparten el botón web y el planificador
	rebuild := func() error {
		if err := runner.Execute(); err != nil {
			return err
		}
		nuevo, err := cube.BuildFromDB(db)
		if err != nil {
			return err
		}
		holder.Publish(nuevo)
		logger.Info("Snapshot del cubo publicado con %d filas", len(nuevo.Rows))
		return nil
	}

	server := web.NewServer(holder, rebuild, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *scheduled {
		go runner.StartScheduler(ctx, func() {
			nuevo, err := cube.BuildFromDB(db)
			if err != nil {
				logger.Error("No se pudo reconstruir el cubo tras la corrida planificada: %v", err)
				return
			}
			holder.Publish(nuevo)
			server.NotificarReconstruccion()
			logger.Info("Snapshot del cubo publicado con %d filas", len(nuevo.Rows))
		})
	}

	if !*serve {
		return
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Servidor web en http://localhost%s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error del servidor web: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("Señal de terminación recibida, cerrando...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error al detener el servidor web: %v", err)
	}

	logger.Info("Servidor detenido")
}
