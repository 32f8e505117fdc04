package main

import (
	"context"
	"flag"
	"log"

	"github.com/yourusername/codequiz-api/internal/config"
	"github.com/yourusername/codequiz-api/internal/repository/postgres"
	"github.com/yourusername/codequiz-api/internal/service"
	"github.com/yourusername/codequiz-api/pkg/database"
)

// Импортёр каталога: читает книгу .xlsx (лист на язык, строка на
// вопрос) и заливает языки, категории и вопросы в базу
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	filePath := flag.String("file", "", "путь к книге .xlsx с каталогом вопросов")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("[Import] Укажите файл каталога: -file questions.xlsx")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Import] Ошибка загрузки конфигурации: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("[Import] Ошибка подключения к PostgreSQL: %v", err)
	}

	importService := service.NewImportService(
		postgres.NewCatalogRepo(db),
		postgres.NewQuestionRepo(db),
	)

	count, err := importService.ImportFile(context.Background(), *filePath)
	if err != nil {
		log.Fatalf("[Import] Ошибка импорта: %v", err)
	}
	log.Printf("[Import] Готово, импортировано вопросов: %d", count)
}
