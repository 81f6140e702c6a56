package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/store-performance-api/internal/api/handler/router"
	"github.com/vfg2006/store-performance-api/internal/scheduler"
	"github.com/vfg2006/store-performance-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-performance-api/internal/usecases/comparing"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKpis(service),
		},
		{
			Path:    "/v1/sales/daily",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/v1/products/top",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
	}
}

func Comparison(service comparing.Comparer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/comparison",
			Method:  http.MethodGet,
			Handler: GetStoreComparison(service),
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/channels",
			Method:  http.MethodGet,
			Handler: ListChannels(service),
		},
	}
}

func CronJobs(digest *scheduler.DailyDigestService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/digest/run",
			Method:  http.MethodPost,
			Handler: RunDigest(digest),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(digest),
		},
	}
}
