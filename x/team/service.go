// Package team resolves team references. Slug resolution is the hot path of
// every authorization check, so resolved ids are kept in memcached with the
// shared staleness bound.
package team

import (
	"context"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel"

	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/x/util"
)

var tracer = otel.Tracer("team")

type service struct {
	repository Repository
	mc         *memcache.Client
	config     util.Config
}

// NewService creates a new team service
func NewService(repository Repository, mc *memcache.Client, config util.Config) core.TeamService {
	return &service{
		repository: repository,
		mc:         mc,
		config:     config,
	}
}

// ResolveID maps a team ref to its numeric id. Numeric refs pass through
// unchanged; slugs are looked up in memcached first, then the store.
func (s *service) ResolveID(ctx context.Context, ref core.TeamRef) (uint, error) {
	ctx, span := tracer.Start(ctx, "Team.Service.ResolveID")
	defer span.End()

	if id, ok := ref.AsID(); ok {
		return id, nil
	}

	slug := ref.String()
	if slug == "" {
		return 0, core.NewErrorInvalidInput("team is required")
	}

	cacheKey := "teamid:" + slug
	if item, err := s.mc.Get(cacheKey); err == nil {
		if id, err := strconv.ParseUint(string(item.Value), 10, 32); err == nil {
			return uint(id), nil
		}
	}

	team, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}

	err = s.mc.Set(&memcache.Item{
		Key:        cacheKey,
		Value:      []byte(strconv.FormatUint(uint64(team.ID), 10)),
		Expiration: int32(s.config.Gatekeeper.CacheTTL().Seconds()),
	})
	if err != nil {
		span.RecordError(err)
	}

	return team.ID, nil
}

// Get returns a team by id
func (s *service) Get(ctx context.Context, id uint) (core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

// Create registers a new team with the creating principal as its owner.
// The owner grant is what lets the creator pass the management checks on a
// team that has no other grants or policies yet.
func (s *service) Create(ctx context.Context, slug, name, owner string) (core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Service.Create")
	defer span.End()

	if slug == "" {
		return core.Team{}, core.NewErrorInvalidInput("slug is required")
	}
	if owner == "" {
		return core.Team{}, core.NewErrorInvalidInput("principal is required")
	}

	if _, err := s.repository.GetBySlug(ctx, slug); err == nil {
		return core.Team{}, core.NewErrorAlreadyExists()
	}

	team := core.Team{
		Slug: slug,
		Name: name,
	}
	if err := s.repository.Create(ctx, &team, owner); err != nil {
		return core.Team{}, err
	}
	return team, nil
}

// List returns all teams
func (s *service) List(ctx context.Context) ([]core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}
