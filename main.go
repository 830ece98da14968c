package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address for remote play (empty to disable)")
	scoresPath := flag.String("scores", "highscores.txt", "Path to the highscore file")
	dbPath := flag.String("db", "sessions.db", "Path to the session archive database (empty to disable)")
	mute := flag.Bool("mute", false, "Disable all audio")
	name := flag.String("name", "", "Prefill the player name")
	flag.Parse()

	scores := NewHighscoreStore(*scoresPath)
	game := NewGame(scores)
	if *name != "" {
		game.SetPlayerName(*name)
	}

	var db *DB
	var analytics *Analytics
	if *dbPath != "" {
		var err error
		db, err = OpenDB(*dbPath)
		if err != nil {
			log.Printf("session archive disabled: %v", err)
			db = nil
		} else {
			analytics = NewAnalytics(db)
			game.SetArchive(db, analytics)
		}
	}

	var hub *Hub
	var server *http.Server
	joinURL, qrURL := "", ""
	if *addr != "" {
		issuer := NewTokenIssuer()
		token, err := issuer.Mint()
		if err != nil {
			log.Fatalf("token mint: %v", err)
		}

		hub = NewHub(issuer)
		go hub.Run()
		game.AddSink(hub)

		baseURL := fmt.Sprintf("http://%s", net.JoinHostPort(LocalIP(), listenPort(*addr)))
		joinURL = fmt.Sprintf("%s/?token=%s", baseURL, token)
		qrURL = baseURL + "/qr"

		mux := SetupRoutes(hub, scores, db, analytics, joinURL)
		server = &http.Server{Addr: *addr, Handler: mux}
		go func() {
			log.Printf("remote play on %s", baseURL)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				log.Printf("ListenAndServe: %v", err)
			}
		}()
	}

	shutdown := func() {
		if server != nil {
			server.Close()
		}
		if analytics != nil {
			analytics.Stop()
		}
		if db != nil {
			db.Close()
		}
	}

	// The window close path returns from RunGame; signals shut down the
	// same way.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("Shutting down...")
		shutdown()
		os.Exit(0)
	}()

	sound := NewSound(*mute)
	game.AddSink(sound)

	renderer := NewRenderer(joinURL, qrURL)
	app := NewApp(game, hub, renderer, sound, scores)

	ebiten.SetWindowTitle("Ten")
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("run: %v", err)
	}

	log.Println("Shutting down...")
	shutdown()
}

// listenPort extracts the port from a flag-style listen address
func listenPort(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return "8080"
	}
	return port
}
