package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Noir-tsu/4Foods-admin/docs"
	"github.com/Noir-tsu/4Foods-admin/internal/queue"
	"github.com/Noir-tsu/4Foods-admin/internal/ratelimiter"
	"github.com/Noir-tsu/4Foods-admin/internal/repo"
	"github.com/Noir-tsu/4Foods-admin/internal/service"
	"github.com/Noir-tsu/4Foods-admin/internal/store/mongo"
	"github.com/Noir-tsu/4Foods-admin/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config           config
	logger           *zap.SugaredLogger
	rateLimiter      ratelimiter.Limiter
	storage          *mongo.Storage
	broker           queue.Broker
	metrics          *metrics
	orderRepo        repo.OrderRepository
	userRepo         repo.UserRepository
	productRepo      repo.ProductRepository
	categoryRepo     repo.CategoryRepository
	shopRepo         repo.ShopRepository
	cartRepo         repo.CartRepository
	voucherRepo      repo.VoucherRepository
	messageRepo      repo.MessageRepository
	notificationRepo repo.NotificationRepository
	orderService     *service.OrderService
	dashboardService *service.DashboardService
	orderWorker      *worker.OrderEventsWorker
}

type config struct {
	addr            string
	env             string
	apiURL          string
	rateLimiter     ratelimiter.Config
	mongo           mongoConfig
	rabbitMQ        rabbitMQConfig
	revenueStatuses []string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)
	r.Use(app.MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", app.dashboardOverviewHandler)
			r.Get("/recent-activity", app.recentActivityHandler)
			r.Get("/recent-orders", app.recentOrdersHandler)
			r.Get("/charts/revenue", app.revenueChartHandler)
			r.Get("/charts/order-status", app.orderStatusChartHandler)
			r.Get("/charts/account-growth", app.accountGrowthChartHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", app.listOrdersHandler)
			r.Get("/pending", app.listPendingOrdersHandler)
			r.Get("/{order_id}", app.getOrderHandler)
			r.Patch("/{order_id}/status", app.updateOrderStatusHandler)
			r.Post("/{order_id}/approve", app.approveOrderHandler)
			r.Post("/{order_id}/reject", app.rejectOrderHandler)
			r.Delete("/{order_id}", app.deleteOrderHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", app.listUsersHandler)
			r.Get("/{user_id}", app.getUserHandler)
			r.Put("/{user_id}", app.updateUserHandler)
			r.Patch("/{user_id}/role", app.changeUserRoleHandler)
			r.Delete("/{user_id}", app.deleteUserHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", app.createProductHandler)
			r.Get("/", app.listProductsHandler)
			r.Get("/{product_id}", app.getProductHandler)
			r.Put("/{product_id}", app.updateProductHandler)
			r.Patch("/{product_id}/status", app.changeProductStatusHandler)
			r.Delete("/{product_id}", app.deleteProductHandler)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", app.createCategoryHandler)
			r.Get("/", app.listCategoriesHandler)
			r.Put("/{category_id}", app.updateCategoryHandler)
			r.Delete("/{category_id}", app.deleteCategoryHandler)
		})

		r.Route("/shops", func(r chi.Router) {
			r.Post("/", app.createShopHandler)
			r.Get("/", app.listShopsHandler)
			r.Get("/{shop_id}", app.getShopHandler)
			r.Put("/{shop_id}", app.updateShopHandler)
			r.Patch("/{shop_id}/status", app.changeShopStatusHandler)
			r.Delete("/{shop_id}", app.deleteShopHandler)
		})

		r.Route("/carts", func(r chi.Router) {
			r.Get("/", app.listCartsHandler)
			r.Get("/user/{user_id}", app.getCartByUserHandler)
			r.Put("/{cart_id}", app.updateCartHandler)
			r.Delete("/{cart_id}", app.deleteCartHandler)
		})

		r.Route("/vouchers", func(r chi.Router) {
			r.Post("/", app.createVoucherHandler)
			r.Get("/", app.listVouchersHandler)
			r.Put("/{voucher_id}", app.updateVoucherHandler)
			r.Delete("/{voucher_id}", app.deleteVoucherHandler)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", app.createMessageHandler)
			r.Get("/", app.listMessagesHandler)
			r.Patch("/{message_id}/read", app.markMessageReadHandler)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", app.listNotificationsHandler)
			r.Patch("/{notification_id}/read", app.markNotificationReadHandler)
			r.Delete("/", app.clearNotificationsHandler)
		})

		r.Get("/stats/counts", app.statsCountsHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "4Foods Admin"
	docs.SwaggerInfo.Description = "Back office API for the 4Foods marketplace"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.orderWorker != nil {
		if err := app.orderWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.orderWorker != nil {
			app.orderWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
