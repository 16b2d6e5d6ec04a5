package main

import (
	"context"
	"embed"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	studiochat "elevated-studio/chat"
	apiblog "elevated-studio/handlers/api/blog"
	apibookings "elevated-studio/handlers/api/bookings"
	apichat "elevated-studio/handlers/api/chat"
	apigallery "elevated-studio/handlers/api/gallery"
	apimemberships "elevated-studio/handlers/api/memberships"
	apitoast "elevated-studio/handlers/api/toast"
	"elevated-studio/handlers/auth"
	authMiddleware "elevated-studio/middleware"
	"elevated-studio/notify"
	"elevated-studio/relay"
	"elevated-studio/stores"
	"elevated-studio/studio"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/zishang520/engine.io/v2/types"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

//go:embed all:frontend
var assets embed.FS

func handleUI() http.HandlerFunc {
	sub, err := fs.Sub(assets, "frontend")
	if err != nil {
		panic(err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/" || path == "" {
			path = "/index.html"
		}

		f, err := sub.Open(strings.TrimPrefix(path, "/"))
		if err != nil {
			// Requests without an extension are client-side routes;
			// hand them index.html and let the page router sort it out.
			if os.IsNotExist(err) && !strings.Contains(path, ".") {
				path = "/index.html"
				f, err = sub.Open("index.html")
			} else {
				http.NotFound(w, r)
				return
			}
		}

		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "Error reading file", http.StatusInternalServerError)
			return
		}

		contentType := http.DetectContentType(content)
		switch {
		case strings.HasSuffix(path, ".js"):
			contentType = "application/javascript"
		case strings.HasSuffix(path, ".html"):
			contentType = "text/html"
		case strings.HasSuffix(path, ".css"):
			contentType = "text/css"
		case strings.HasSuffix(path, ".png"):
			contentType = "image/png"
		case strings.HasSuffix(path, ".woff2"):
			contentType = "font/woff2"
		}

		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write(content); err != nil {
			http.Error(w, "Error serving file", http.StatusInternalServerError)
			return
		}
	}
}

func setupRouter(state *studio.State, relayClient *relay.Client, toasts *notify.Notifier) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "X-CSRF-Token", "Token", "session", "Origin", "Host", "Connection", "Accept-Encoding", "Accept-Language", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Route("/api/v2", func(r chi.Router) {
		// Public site surface
		r.Get("/gallery", apigallery.HandleList(state))
		r.Get("/blog", apiblog.HandleList(state))
		r.Get("/blog/{id}", apiblog.HandleGet(state))
		r.Get("/services", apibookings.HandleServices())
		r.Get("/timeslots", apibookings.HandleTimeSlots())
		r.Get("/plans", apimemberships.HandlePlans())
		r.Get("/toast", apitoast.HandleCurrent(toasts))
		r.Post("/bookings", apibookings.HandleCreate(state, relayClient, toasts))
		r.Post("/memberships", apimemberships.HandleSignup(state))
		r.Route("/chat", func(r chi.Router) {
			r.Get("/quick-replies", apichat.HandleQuickReplies())
			r.Post("/messages", apichat.HandleMessage())
		})

		// Management surface, operator JWT required
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthJWT)
			r.Post("/gallery", apigallery.HandleUpload(state))
			r.Post("/blog", apiblog.HandlePublish(state))
			r.Delete("/blog/{id}", apiblog.HandleDelete(state))
			r.Get("/bookings", apibookings.HandleList(state))
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", auth.HandleLogin)
		r.Get("/callback", auth.HandleCallback)
	})

	return r
}

func setupSocketIO() *socketio.Server {
	opts := socketio.DefaultServerOptions()
	opts.SetPath("/socket.io")
	opts.SetAllowEIO3(true)
	opts.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})
	ioo := socketio.NewServer(nil, opts)

	ioo.On("connection", func(clients ...any) {
		socket := clients[0].(*socketio.Socket)
		logrus.WithField("socket_id", socket.Id()).Debug("Chat widget connected")
		socket.Emit("chat-greeting", studiochat.Greeting())

		socket.On("chat-message", func(datas ...any) {
			if len(datas) == 0 {
				return
			}
			text, ok := datas[0].(string)
			if !ok {
				return
			}
			reply := studiochat.Respond(text)
			logrus.WithFields(logrus.Fields{
				"socket_id": socket.Id(),
				"intent":    reply.Intent,
			}).Debug("Chat message handled")

			// The widget shows a typing indicator for a beat before the
			// canned reply lands.
			time.AfterFunc(time.Second, func() {
				socket.Emit("bot-reply", studiochat.NewMessage(reply.Text, "bot"))
			})
		})

		socket.On("disconnect", func(datas ...any) {
			socket.RemoveAllListeners("")
			socket.Disconnect(true)
		})
	})
	return ioo
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	listenAddress := flag.String("listen", ":3002", "The address to listen on.")
	logLevel := flag.String("loglevel", "info", "The log level (debug, info, warn, error).")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	auth.InitAuth()

	snaps := stores.GetStore()
	toasts := notify.New(notify.DefaultDuration)
	state := studio.NewState(toasts)
	relayClient := relay.NewFromEnv()

	gateway := studio.NewGateway(state, snaps)
	gateway.Load(context.Background())

	saveCtx, stopSaving := context.WithCancel(context.Background())
	var saver sync.WaitGroup
	saver.Add(1)
	go func() {
		defer saver.Done()
		gateway.AutoSave(saveCtx, studio.AutoSaveInterval)
	}()

	r := setupRouter(state, relayClient, toasts)

	ioo := setupSocketIO()
	r.Mount("/socket.io/", ioo.ServeHandler(nil))
	r.NotFound(handleUI())

	logrus.WithField("addr", *listenAddress).Info("starting server")
	go func() {
		if err := http.ListenAndServe(*listenAddress, r); err != nil {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-exit

	logrus.Info("Shutting down...")
	stopSaving()
	saver.Wait() // final flush runs inside AutoSave
	ioo.Close(nil)
	if err := snaps.Close(); err != nil {
		logrus.WithError(err).Warn("Failed to close snapshot store")
	}
}
