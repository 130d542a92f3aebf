package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"

	gatekeeper "github.com/deco-cx/gatekeeper"
	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/x/access"
	"github.com/deco-cx/gatekeeper/x/policy"
	"github.com/deco-cx/gatekeeper/x/role"
	"github.com/deco-cx/gatekeeper/x/team"
	"github.com/deco-cx/gatekeeper/x/util"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Gatekeeper %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := util.Config{}
	configPath := os.Getenv("GATEKEEPER_CONFIG")
	if configPath == "" {
		configPath = "/etc/gatekeeper/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "gatekeeper/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "gatekeeper",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Team{},
		&core.Role{},
		&core.Policy{},
		&core.MemberRole{},
		&core.RolePolicy{},
	)

	// seed the distinguished owner system role and its management policy,
	// then link them so the creator grant on a fresh team resolves to the
	// statements that unlock the management routes
	ownerRole := core.Role{ID: core.OwnerRoleID}
	db.Where(core.Role{ID: core.OwnerRoleID}).
		Attrs(core.Role{Name: core.OwnerRoleName, Description: "Team owner"}).
		FirstOrCreate(&ownerRole)

	ownerPolicy := core.Policy{ID: core.OwnerPolicyID}
	db.Where(core.Policy{ID: core.OwnerPolicyID}).
		Attrs(core.Policy{
			Name: "owner",
			Statements: core.StatementList{
				{Effect: core.EffectAllow, Resource: core.ResourceTeamRolesManage},
				{Effect: core.EffectAllow, Resource: core.ResourceTeamMembersManage},
				{Effect: core.EffectAllow, Resource: core.ResourceTeamPoliciesManage},
			},
		}).
		FirstOrCreate(&ownerPolicy)

	ownerLink := core.RolePolicy{RoleID: core.OwnerRoleID, PolicyID: core.OwnerPolicyID}
	db.Where(core.RolePolicy{RoleID: core.OwnerRoleID, PolicyID: core.OwnerPolicyID}).
		FirstOrCreate(&ownerLink)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       0,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	teamService := gatekeeper.SetupTeamService(db, mc, config)
	teamHandler := team.NewHandler(teamService)

	roleService := gatekeeper.SetupRoleService(db, rdb, mc, config)
	roleHandler := role.NewHandler(roleService)

	policyService := gatekeeper.SetupPolicyService(db, rdb, mc, config)
	policyHandler := policy.NewHandler(policyService)

	accessService := gatekeeper.SetupAccessService(db, rdb, mc, config)
	accessHandler := access.NewHandler(accessService)

	apiV1 := e.Group("", access.Identify)

	// team
	apiV1.GET("/teams", teamHandler.List)
	apiV1.POST("/teams", teamHandler.Create)
	apiV1.GET("/teams/:team", teamHandler.Get)

	// role
	apiV1.GET("/teams/:team/roles", roleHandler.List)
	apiV1.POST("/teams/:team/roles", roleHandler.Create, access.Restrict(accessService, core.ResourceTeamRolesManage))
	apiV1.PUT("/teams/:team/roles/:id", roleHandler.Update, access.Restrict(accessService, core.ResourceTeamRolesManage))
	apiV1.DELETE("/teams/:team/roles/:id", roleHandler.Delete, access.Restrict(accessService, core.ResourceTeamRolesManage))

	// member roles
	apiV1.GET("/teams/:team/members/:principal/roles", roleHandler.GetUserRoles)
	apiV1.PUT("/teams/:team/members/:principal/roles/:id", roleHandler.Grant, access.Restrict(accessService, core.ResourceTeamMembersManage))
	apiV1.DELETE("/teams/:team/members/:principal/roles/:id", roleHandler.Revoke, access.Restrict(accessService, core.ResourceTeamMembersManage))

	// policy
	apiV1.GET("/teams/:team/policies", policyHandler.List)
	apiV1.GET("/teams/:team/policies/:id", policyHandler.Get)
	apiV1.POST("/teams/:team/policies", policyHandler.Create, access.Restrict(accessService, core.ResourceTeamPoliciesManage))
	apiV1.PUT("/teams/:team/policies/:id", policyHandler.Update, access.Restrict(accessService, core.ResourceTeamPoliciesManage))
	apiV1.DELETE("/teams/:team/policies/:id", policyHandler.Delete, access.Restrict(accessService, core.ResourceTeamPoliciesManage))

	// access
	apiV1.POST("/access/check", accessHandler.Check)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	listenAddr := config.Server.ListenAddr
	if listenAddr == "" {
		listenAddr = ":8000"
	}
	e.Logger.Fatal(e.Start(listenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
