package configuration

const AppName = "rojsale-admin"

// JWT audience for dashboard session tokens.
const AudienceAccessToken = "admin:*"

// RefreshIntervalSeconds is the fixed poll cadence inherited from the
// dashboard's 60-second auto refresh.
const RefreshIntervalSeconds = 60

const (
	CacheMaxAppIdentityLifetime = 60
	CacheAppIdentityKey         = "admin:identity"
	CacheAppRateLimitKey        = "admin:ratelimit:%s"
	CacheAppWorkerLockKey       = "admin:worker:lock:%s"
	CacheAppWorkerLockTTL       = 60
	CacheAppWorkerLockRefresh   = 55
	CacheSnapshotKey            = "admin:snapshot:%s"
	CacheSnapshotTTL            = 300
)

// Snapshot resources stored in the cache.
const (
	SnapshotReport     = "report"
	SnapshotUsers      = "users"
	SnapshotAds        = "ads"
	SnapshotCategories = "categories"
	SnapshotDashboard  = "dashboard"
)

// Event queues.
const (
	EventsRefresh = "refresh"
	EventsAlerts  = "alerts"
)

// AuthRule describes whether a route requires an authenticated session.
type AuthRule struct {
	Path        string
	Method      string
	RequireAuth bool
}

var AuthRuleExactMatchPath = map[string][]AuthRule{
	"/api/v1/auth/login": {{Method: "POST", RequireAuth: false}},
	"/api/v1/health":     {{Method: "GET", RequireAuth: false}},
}

var AuthRulePrefixMatchPath = []AuthRule{}

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"app.trusted_proxies",
	"cache.redis.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
