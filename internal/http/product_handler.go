package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/commerce-mock/internal/apperr"
	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
	"github.com/tuanvumaihuynh/commerce-mock/internal/service"
)

type productResponse struct {
	Product model.ProductView `json:"product"`
}

type productListResponse struct {
	Products []model.ProductView `json:"products"`
}

func (s *Service) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		// a non-numeric id can never match a product; the message
		// still echoes what was asked for
		s.respondError(w, r, apperr.NewNotFound(fmt.Sprintf("No product with id %s", raw)))
		return
	}

	product, err := s.catalogSvc.GetProduct(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, productResponse{Product: product})
}

func (s *Service) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalogSvc.ListProducts(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, productListResponse{Products: products})
}

func (s *Service) handleSearchByTags(w http.ResponseWriter, r *http.Request) {
	var tags []string
	if err := json.NewDecoder(r.Body).Decode(&tags); err != nil || tags == nil {
		s.respondError(w, r, apperr.ErrNoSearchTerms)
		return
	}

	products, err := s.catalogSvc.SearchByTags(r.Context(), tags)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, productListResponse{Products: products})
}

type addProductRequest struct {
	Name             string          `json:"name" validate:"required"`
	Price            float64         `json:"price" validate:"gte=0"`
	VatTax           bool            `json:"vatTax"`
	VatTaxPercentage model.FlexFloat `json:"vatTaxPercentage" validate:"gte=0"`
	Tags             string          `json:"tags"`
	Stock            int             `json:"stock" validate:"gte=0"`
}

type statusMessageResponse struct {
	StatusMessage string `json:"statusMessage"`
}

func (s *Service) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperr.ErrNoProductDetails)
		return
	}

	if err := s.validate.Validate(req); err != nil {
		s.respondError(w, r, err)
		return
	}

	product, err := s.catalogSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:             req.Name,
		Price:            req.Price,
		VatTax:           req.VatTax,
		VatTaxPercentage: req.VatTaxPercentage,
		Tags:             req.Tags,
		Stock:            req.Stock,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respond(w, r, http.StatusOK, statusMessageResponse{
		StatusMessage: fmt.Sprintf("Created product %s with ID %d successfully", product.Name, product.ID),
	})
}
