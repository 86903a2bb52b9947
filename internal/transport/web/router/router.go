package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/datasources"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/makanrank/ranking-engine/internal/transport/web/controller"
)

func MakeRouter(
	readModel datasources.ReadModel,
	recomputeCmd command.Command[command.RecomputeRankingsRequest, domain.RunSummary],
	recomputeDefaults domain.EngineConfig,
	submitRankingListCmd command.Command[command.SubmitRankingListRequest, command.Empty],
	recordVisitCmd command.Command[command.RecordVisitRequest, command.Empty],
	readCacheMaxAge time.Duration,
	observer RequestObserver,
	metricsHandler http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(observeMiddleware(observer))

	r.Handle("/v1/leaderboard", controller.LeaderboardList{
		Reader:      readModel,
		CacheMaxAge: readCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/views/hidden-gems", controller.HiddenGemsGet{
		Reader:      readModel,
		CacheMaxAge: readCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/views/local-favorites/{locality}", controller.LocalFavoritesGet{
		Reader:      readModel,
		CacheMaxAge: readCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recompute", controller.RecomputeTrigger{
		Recompute: recomputeCmd,
		Defaults:  recomputeDefaults,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/rankings/{category}", controller.RankingListPut{
		SubmitCmd: submitRankingListCmd,
	}).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/items/{item_id}/visits", controller.VisitCreate{
		RecordCmd: recordVisitCmd,
	}).Methods(http.MethodPost, http.MethodOptions)

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	return r, nil
}
