package api

import "github.com/RoyceAzure/lab/stadiumorder/internal/api/handler"

type Server struct {
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
}

func NewServer(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		CatalogHandler: catalogHandler,
		OrderHandler:   orderHandler,
	}
}
