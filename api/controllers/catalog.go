package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dudashop/inventory-backend/api/responses"
	"github.com/dudashop/inventory-backend/api/validators"
	"github.com/dudashop/inventory-backend/internal/catalog"
	"github.com/dudashop/inventory-backend/pkg/logger"
)

type catalogAddRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1,max=255"`
}

func CatalogList(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		names, err := service.List(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": names})
	}
}

func CatalogAdd(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req catalogAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := service.Add(ctx, req.ProductName); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"product_name": req.ProductName})
	}
}

func CatalogRemove(service catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		name := chi.URLParam(r, "productName")

		if err := service.Remove(ctx, name); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"product_name": name})
	}
}
