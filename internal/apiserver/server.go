package apiserver

import (
	"github.com/AndriiHamasa/lunchify/internal/apiserver/config"
	srvv1 "github.com/AndriiHamasa/lunchify/internal/apiserver/service/v1"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store/mysql"
	"github.com/AndriiHamasa/lunchify/internal/pkg/cache"
	"github.com/AndriiHamasa/lunchify/internal/pkg/event"
	genericoptions "github.com/AndriiHamasa/lunchify/internal/pkg/options"
	genericapiserver "github.com/AndriiHamasa/lunchify/internal/pkg/server"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

type apiServer struct {
	genericAPIServer *genericapiserver.GenericAPIServer
	cfg              *config.Config
	service          srvv1.Service
	cache            *cache.Cache
	producer         event.Producer
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	storeIns, err := mysql.GetMySQLFactoryOr(cfg.MySQLOptions)
	if err != nil {
		return nil, err
	}
	store.SetClient(storeIns)
	log.Info("mysql store initialized")

	cacheIns, err := cache.New(cfg.RedisOptions)
	if err != nil {
		return nil, err
	}

	producer := event.New(cfg.KafkaOptions)

	serviceOpts := []srvv1.Option{
		srvv1.WithCache(cacheIns),
		srvv1.WithProducer(producer),
	}
	if cfg.GenericServerRunOptions.TallyScope == genericoptions.TallyScopeDaily {
		serviceOpts = append(serviceOpts, srvv1.WithDailyTally())
	}
	service := srvv1.NewService(storeIns, serviceOpts...)

	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}
	genericAPIServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	return &apiServer{
		genericAPIServer: genericAPIServer,
		cfg:              cfg,
		service:          service,
		cache:            cacheIns,
		producer:         producer,
	}, nil
}

func (a *apiServer) PrepareRun() preparedAPIServer {
	initRouter(a.genericAPIServer.Engine, a.cfg, a.service)

	return preparedAPIServer{a}
}

func (p preparedAPIServer) Run() error {
	defer func() {
		if err := p.producer.Close(); err != nil {
			log.Warnf("close event producer failed: %v", err)
		}
		if err := p.cache.Close(); err != nil {
			log.Warnf("close cache failed: %v", err)
		}
		if err := store.Client().Close(); err != nil {
			log.Warnf("close store failed: %v", err)
		}
	}()

	return p.genericAPIServer.Run()
}

func buildGenericConfig(cfg *config.Config) (*genericapiserver.Config, error) {
	genericConfig := genericapiserver.NewConfig()
	genericConfig.Mode = cfg.GenericServerRunOptions.Mode
	genericConfig.Healthz = cfg.GenericServerRunOptions.Healthz
	genericConfig.Middlewares = cfg.GenericServerRunOptions.Middlewares
	genericConfig.EnableProfiling = cfg.FeatureOptions.EnableProfiling
	genericConfig.EnableMetrics = cfg.FeatureOptions.EnableMetrics
	genericConfig.CtxTimeout = cfg.GenericServerRunOptions.CtxTimeout
	genericConfig.InsecureServingInfo = &genericapiserver.InsecureServingInfo{
		BindAddress: cfg.InsecureServing.BindAddress,
		BindPort:    cfg.InsecureServing.BindPort,
	}

	return genericConfig, nil
}
