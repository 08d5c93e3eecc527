// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"maps"
	"net/http"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// decodeFunc reads, validates and maps a request body to an entity. On
// failure it has already written the error response and returns false.
type decodeFunc[T any] func(w http.ResponseWriter, r *http.Request) (*T, bool)

// decoder builds a decodeFunc from a request DTO type and its mapping to
// the entity.
func decoder[T, R any, PR interface {
	*R
	validatable
}](toEntity func(PR) (*T, error)) decodeFunc[T] {
	return func(w http.ResponseWriter, r *http.Request) (*T, bool) {
		req := PR(new(R))
		if !decodeAndValidate(w, r, req) {
			return nil, false
		}
		entity, err := toEntity(req)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return nil, false
		}
		return entity, true
	}
}

// plain adapts a mapping that cannot fail.
func plain[T, R any](fn func(*R) *T) func(*R) (*T, error) {
	return func(r *R) (*T, error) { return fn(r), nil }
}

// listConfig holds the listing behavior of a Resource. Anonymous callers
// get public merged into their filters.
type listConfig struct {
	orderBy string
	filters []queryFilter
	public  domain.Filter
}

// Resource serves list, get, create, update and delete for one entity type.
// Reads are public; anonymous callers only see entities matching the public
// filter, and visible hides single entities from them on Get.
type Resource[T, U any] struct {
	svc     ports.EntityService[T]
	decode  decodeFunc[T]
	encode  func(*T) U
	list    listConfig
	visible func(*T) bool
}

func newResource[T, U any](svc ports.EntityService[T], decode decodeFunc[T], encode func(*T) U, list listConfig, visible func(*T) bool) *Resource[T, U] {
	return &Resource[T, U]{svc: svc, decode: decode, encode: encode, list: list, visible: visible}
}

func anonymous(r *http.Request) bool {
	return middleware.PrincipalFromContext(r.Context()) == nil
}

// List handles GET on the collection.
func (rs *Resource[T, U]) List(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r, rs.list.orderBy, rs.list.filters...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if anonymous(r) && len(rs.list.public) > 0 {
		if params.Filter == nil {
			params.Filter = domain.Filter{}
		}
		maps.Copy(params.Filter, rs.list.public)
	}

	page, err := rs.svc.List(r.Context(), params)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPageResponse(page, rs.encode))
}

// Get handles GET on /{id}.
func (rs *Resource[T, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity, err := rs.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if anonymous(r) && rs.visible != nil && !rs.visible(entity) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rs.encode(entity))
}

// Create handles POST on the collection.
func (rs *Resource[T, U]) Create(w http.ResponseWriter, r *http.Request) {
	entity, ok := rs.decode(w, r)
	if !ok {
		return
	}

	created, err := rs.svc.Create(r.Context(), entity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rs.encode(created))
}

// Update handles PUT on /{id}.
func (rs *Resource[T, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity, ok := rs.decode(w, r)
	if !ok {
		return
	}

	updated, err := rs.svc.Update(r.Context(), id, entity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rs.encode(updated))
}

// Delete handles DELETE on /{id}.
func (rs *Resource[T, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := rs.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
