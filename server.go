package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	qrcode "github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LocalIP returns the first non-loopback IPv4 address, for building the
// join URL shown on the title screen. Falls back to 127.0.0.1.
func LocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}

// SetupRoutes configures HTTP routes
func SetupRoutes(hub *Hub, scores *HighscoreStore, db *DB, analytics *Analytics, joinURL string) *http.ServeMux {
	mux := http.NewServeMux()

	// Controller page. The token rides in the URL fragment/query and the
	// page's JS presents it over the WebSocket.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(controllerHTML))
	})

	// QR code for the join URL, scanned from the title screen
	mux.HandleFunc("/qr", func(w http.ResponseWriter, r *http.Request) {
		png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "qr encode failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	})

	// Top highscores as JSON
	mux.HandleFunc("/scores", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(scores.Top(10))
	})

	// Session archive stats, only when the database is wired
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db == nil {
			json.NewEncoder(w).Encode(map[string]interface{}{"sessions": 0})
			return
		}
		count, _ := db.SessionCount()
		best, _ := db.BestWave()
		top, _ := db.TopSessions(10)
		out := map[string]interface{}{
			"sessions":  count,
			"best_wave": best,
			"top":       top,
		}
		if analytics != nil {
			if counts, err := analytics.EventCounts(7); err == nil {
				out["events_7d"] = counts
			}
			if kills, err := analytics.KillsByType(); err == nil {
				out["kills_by_type"] = kills
			}
		}
		json.NewEncoder(w).Encode(out)
	})

	// WebSocket endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !hub.CanAccept(ip) {
			http.Error(w, "too many connections", http.StatusServiceUnavailable)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			return
		}

		hub.TrackConnect(ip)

		client := NewClient(hub, conn, ip)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	})

	return mux
}

const controllerHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1, user-scalable=no">
<title>Gamepad</title>
<style>
body { margin: 0; background: #0a0a1a; color: #8f8; font-family: monospace; user-select: none; }
#pad { display: flex; height: 60vh; }
#pad button { flex: 1; margin: 8px; font-size: 2em; background: #123; color: #8f8; border: 2px solid #8f8; border-radius: 12px; }
#fire { height: 25vh; width: calc(100% - 16px); margin: 8px; font-size: 2em; background: #311; color: #f88; border: 2px solid #f88; border-radius: 12px; }
#status { text-align: center; padding: 8px; }
</style>
</head>
<body>
<div id="status">connecting...</div>
<div id="pad">
<button id="left">&#9664;</button>
<button id="right">&#9654;</button>
</div>
<button id="fire">FIRE</button>
<script>
const token = new URLSearchParams(location.search).get("token") || "";
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const state = { l: false, r: false, f: false, c: false, rs: false };
const status = document.getElementById("status");

ws.onopen = () => ws.send(JSON.stringify({ t: "control", d: { token: token } }));
ws.onmessage = (e) => {
  const msg = JSON.parse(e.data);
  if (msg.t === "control_ok") status.textContent = "connected";
  if (msg.t === "error") status.textContent = msg.d.msg;
};
ws.onclose = () => { status.textContent = "disconnected"; };

function send() {
  if (ws.readyState === WebSocket.OPEN) {
    ws.send(JSON.stringify({ t: "input", d: state }));
  }
}
function bindHold(id, key) {
  const el = document.getElementById(id);
  const down = (ev) => { ev.preventDefault(); state[key] = true; send(); };
  const up = (ev) => { ev.preventDefault(); state[key] = false; send(); };
  el.addEventListener("touchstart", down);
  el.addEventListener("touchend", up);
  el.addEventListener("mousedown", down);
  el.addEventListener("mouseup", up);
}
bindHold("left", "l");
bindHold("right", "r");
bindHold("fire", "f");
</script>
</body>
</html>
`
