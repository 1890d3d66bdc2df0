package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"nailuxe-notify/internal/config"
	"nailuxe-notify/internal/database"
	"nailuxe-notify/internal/email"
	"nailuxe-notify/internal/firebase"
	"nailuxe-notify/internal/identity"
	"nailuxe-notify/internal/notifier"
	"nailuxe-notify/internal/push"
	"nailuxe-notify/internal/reminder"
	"nailuxe-notify/internal/scheduler"
	"nailuxe-notify/internal/store"
	"nailuxe-notify/pkg/models"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	_ "github.com/lib/pq"
)

// --- CORE STRUCTURES ---

// DashboardServer streams the server log to connected admin dashboards over
// websocket, so the salon owner can watch reminders go out live.
type DashboardServer struct {
	upgrader websocket.Upgrader
	clients  map[*DashboardClient]bool
	mu       sync.RWMutex
}

type DashboardClient struct {
	Conn   *websocket.Conn
	SendCh chan []byte
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

var (
	db        *database.DB
	fbApp     *firebase.App
	dashboard *DashboardServer
	startTime time.Time

	serverLogs []string
	logsMutex  sync.RWMutex
)

const maxLogs = 100

type logWriter struct{}

func (lw logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}

	timestamp := time.Now().Format("15:04:05")
	logEntry := fmt.Sprintf("[%s] %s", timestamp, msg)

	logsMutex.Lock()
	serverLogs = append(serverLogs, logEntry)
	if len(serverLogs) > maxLogs {
		serverLogs = serverLogs[1:]
	}
	logsMutex.Unlock()

	// Print to console as well
	fmt.Println(logEntry)

	if dashboard != nil {
		dashboard.Broadcast([]byte(logEntry))
	}

	return len(p), nil
}

// --- INITIALIZATION ---

func NewDashboardServer() *DashboardServer {
	return &DashboardServer{
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*DashboardClient]bool),
	}
}

func main() {
	log.SetFlags(0)
	log.SetOutput(logWriter{})

	startTime = time.Now()
	dashboard = NewDashboardServer()
	log.Println("🚀 Starting salon notification service...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("❌ Unknown timezone %q: %v", cfg.TimeZone, err)
	}

	ctx := context.Background()

	fbApp, err = firebase.NewApp(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("❌ Firebase error: %v", err)
	}
	defer fbApp.Close()

	if cfg.DatabaseURL != "" {
		db, err = database.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️  Delivery log unavailable: %v", err)
			db = nil
		} else {
			defer db.Close()
			log.Println("✅ Delivery log initialized")
		}
	}

	st := store.NewStore(fbApp.Firestore)
	ids := identity.NewService(fbApp.Auth)
	pushService := push.NewService(fbApp.Messaging)

	// db is a typed nil inside the interface when unset, so guard here.
	var audit reminder.DeliveryRecorder
	if db != nil {
		audit = db
	}
	var pushAudit notifier.DeliveryRecorder
	if db != nil {
		pushAudit = db
	}

	bookingNotifier := notifier.NewNotifier(st, pushService, pushAudit)

	manager := scheduler.NewManager()

	emailService, err := email.NewEmailService(cfg)
	if err != nil {
		log.Printf("⚠️  Email service not configured, reminder scanner disabled: %v", err)
	} else {
		scanner := reminder.NewScanner(st, ids, emailService, audit, loc)
		manager.RegisterWorker(scheduler.NewWorker(
			"appointment-reminders",
			time.Duration(cfg.ScanIntervalMinutes)*time.Minute,
			scanner.Run,
		))
	}

	manager.Start()
	defer manager.Stop()

	go watchBookings(ctx, st, bookingNotifier)

	router := mux.NewRouter()
	router.HandleFunc("/ws", dashboard.HandleWebSocket)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", statsHandler).Methods("GET")
	api.HandleFunc("/health", healthCheckHandler).Methods("GET")
	api.HandleFunc("/logs", logsHandler).Methods("GET")
	api.HandleFunc("/deliveries", deliveriesHandler).Methods("GET")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir("./web")))

	log.Printf("✅ Service ready on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsMiddleware(router)))
}

// watchBookings keeps the Firestore booking watcher alive, pushing a
// notification to the admin devices for every booking created while running.
func watchBookings(ctx context.Context, st *store.Store, n *notifier.Notifier) {
	for {
		err := st.WatchNewBookings(ctx, func(b models.Booking) {
			log.Printf("🆕 New booking %s (%s, %s at %s)", b.ID, b.Name, b.Date, b.Time)
			if err := n.HandleBookingCreated(ctx, b); err != nil {
				log.Printf("❌ Failed to announce booking %s: %v", b.ID, err)
			}
		})

		if ctx.Err() != nil {
			return
		}

		log.Printf("⚠️  Booking watcher disconnected: %v (reconnecting in 5s)", err)
		time.Sleep(5 * time.Second)
	}
}

// --- WEBSOCKET ---

func (s *DashboardServer) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ Upgrade error: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	client := &DashboardClient{
		Conn:   conn,
		SendCh: make(chan []byte, 64),
		ctx:    ctx,
		cancel: cancel,
	}

	s.mu.Lock()
	s.clients[client] = true
	s.mu.Unlock()

	log.Println("📊 Dashboard connected")

	go s.handleClientSend(client)
	s.handleClientReads(client)
}

// handleClientReads drains incoming frames until the peer disconnects.
// Dashboards only listen; anything they send is discarded.
func (s *DashboardServer) handleClientReads(client *DashboardClient) {
	defer s.cleanupClient(client)

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *DashboardServer) handleClientSend(client *DashboardClient) {
	for {
		select {
		case <-client.ctx.Done():
			return
		case msg := <-client.SendCh:
			client.mu.Lock()
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// Broadcast fans a log line out to every connected dashboard. Slow clients
// are skipped rather than blocking the logger.
func (s *DashboardServer) Broadcast(msg []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for client := range s.clients {
		select {
		case client.SendCh <- msg:
		default:
		}
	}
}

func (s *DashboardServer) GetActiveClientsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *DashboardServer) cleanupClient(client *DashboardClient) {
	client.cancel()
	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
	client.Conn.Close()
	log.Println("🔌 Dashboard disconnected")
}

// --- API HANDLERS ---

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept")

		// Answer preflight immediately
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func statsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dbStatus := false
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := db.GetConnection().PingContext(ctx); err == nil {
			dbStatus = true
		}
	}

	response := map[string]interface{}{
		"active_dashboards": dashboard.GetActiveClientsCount(),
		"uptime":            formatDuration(time.Since(startTime)),
		"db_status":         dbStatus,
		"firebase_ok":       fbApp != nil,
		"timestamp":         time.Now().Unix(),
	}

	json.NewEncoder(w).Encode(response)
}

func logsHandler(w http.ResponseWriter, r *http.Request) {
	logsMutex.RLock()
	defer logsMutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(map[string]interface{}{
		"logs": serverLogs,
	})
}

func deliveriesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if db == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"enabled":    false,
			"deliveries": []models.DeliveryEntry{},
		})
		return
	}

	entries, err := db.RecentDeliveries(r.Context(), 50)
	if err != nil {
		log.Printf("❌ Failed to read delivery log: %v", err)
		http.Error(w, "failed to read delivery log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.DeliveryEntry{}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"enabled":    true,
		"deliveries": entries,
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "healthy"
	httpStatus := http.StatusOK

	if db != nil {
		if err := db.GetConnection().Ping(); err != nil {
			status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
