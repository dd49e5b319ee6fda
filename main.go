package main

import (
	"log"

	"github.com/Aashish23092/tax-document-extraction/client"
	"github.com/Aashish23092/tax-document-extraction/config"
	"github.com/Aashish23092/tax-document-extraction/handler"
	"github.com/Aashish23092/tax-document-extraction/logger"
	"github.com/Aashish23092/tax-document-extraction/service"
	"github.com/Aashish23092/tax-document-extraction/store"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	zapLogger, err := logger.Init(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	for _, warning := range cfg.Warnings {
		zap.L().Warn("configuration fallback", zap.String("detail", warning))
	}

	// OCR engines, PaddleOCR first when configured
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	var ocrClients []service.OCRClient
	if cfg.PaddleOCRAPIURL != "" {
		ocrClients = append(ocrClients, client.NewPaddleClient(cfg.PaddleOCRAPIURL))
	}
	ocrClients = append(ocrClients, tesseractClient)

	// Initialize service layer
	pdfProcessor := service.NewPDFProcessor()
	textService := service.NewTextService(pdfProcessor, cfg.EnableOCR, cfg.MinTextLengthForOCR, ocrClients...)
	resultCache := cache.New(cfg.ResultCacheTTL, 2*cfg.ResultCacheTTL)
	extractionService := service.NewExtractionService(textService, resultCache, cfg.MaxConcurrentDocuments)

	runStore, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		zap.L().Fatal("failed to open run store", zap.Error(err))
	}
	defer runStore.Close()

	// Initialize handler layer
	extractionHandler := handler.NewExtractionHandler(extractionService, runStore, cfg.MaxFileSize)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20
	extractionHandler.RegisterRoutes(router)

	zap.L().Info("starting tax document extraction service",
		zap.String("port", cfg.ServerPort),
		zap.Bool("ocr_enabled", cfg.EnableOCR),
		zap.Int("ocr_engines", len(ocrClients)),
	)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
