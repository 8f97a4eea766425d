package config

type (
	InternalConfig struct {
		App    App
		LeanIX LeanIX
		Cache  Cache
		Batch  Batch
	}

	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
	}

	// LeanIX holds the outbound connection pool settings; the per-request
	// credentials (instance URL, API token, workspace id) always come from
	// the caller, never from the environment.
	LeanIX struct {
		RequestTimeoutInSeconds int
		MaxIdleConns            int
		MaxIdleConnsPerHost     int
	}

	Cache struct {
		Enabled      bool
		TTLInSeconds int
	}

	Batch struct {
		MaxSize int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
