package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/zemzen/booking-service/internal/api/handlers"
)

const msgTooManyRequests = "Príliš veľa požiadaviek. Skúste to prosím neskôr."

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	proxies  int
	now      func() time.Time
	log      Logger
}

// NewRateLimiter perMinute запросов в минуту с всплеском burst.
// Записи IP, не появлявшихся дольше ttl, удаляются при следующих обращениях.
// trustedProxies число доверенных прокси перед сервисом; 0 значит X-Forwarded-For игнорируется.
func NewRateLimiter(perMinute, burst int, ttl time.Duration, trustedProxies int, log Logger) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		ttl:      ttl,
		proxies:  trustedProxies,
		now:      time.Now,
		log:      log,
	}
}

// Limit middleware для POST маршрутов
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, rl.proxies)
		if !rl.allow(ip) {
			rl.log.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
			w.Header().Set("Retry-After", "60")
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evict(now)

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) evict(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, ip)
		}
	}
}

// clientIP адрес клиента. Каждый прокси дописывает в X-Forwarded-For справа адрес,
// с которого пришел запрос, поэтому при proxies доверенных прокси клиент стоит
// на позиции proxies с конца. Все левее подставлено самим клиентом.
func clientIP(r *http.Request, proxies int) string {
	if proxies > 0 {
		if hops := forwardedHops(r.Header.Values("X-Forwarded-For")); len(hops) > 0 {
			if proxies > len(hops) {
				return hops[0]
			}
			return hops[len(hops)-proxies]
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// forwardedHops адреса из всех заголовков X-Forwarded-For по порядку
func forwardedHops(values []string) []string {
	var hops []string
	for _, v := range values {
		for _, hop := range strings.Split(v, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	return hops
}
