package config

const (
	defaultLogFile             = "bookmate.log"
	defaultLogLevel            = "info"
	defaultLogFileMaxSize      = 20
	defaultLogFileMaxBackups   = 3
	defaultLogFileMaxAge       = 28
	defaultLogCompress         = false
	defaultPort                = 8080
	defaultHost                = "0.0.0.0"
	defaultData                = "/var/opt/bookmate"
	defaultDSN                 = defaultData + "/bookmate.db"
	defaultWorkerPoolSize      = 2
	defaultMaxUploadSize       = 10
	defaultPageSize            = 9
	defaultRecommendServiceURL = ""
	defaultRecommendTimeout    = 15
)

type Option struct {
	Key   string
	Value interface{}
}

// Field tags are mapstructure instead of json because viper unmarshals
// through mapstructure.
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// DSN is the path of the sqlite database
	DSN string `mapstructure:"dsn_uri"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Data is the directory to store data
	Data           string `mapstructure:"data"`
	WorkerPoolSize int    `mapstructure:"worker_pool_size"`
	// MaxUploadSize is the maximum size of a CSV upload, in MiB
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
	// PageSize is the default number of books per catalog page
	PageSize int `mapstructure:"page_size"`
	// RecommendServiceURL is the base URL of the external recommendation
	// service. Empty means the built-in heuristic scorer is used.
	RecommendServiceURL string `mapstructure:"recommend_service_url"`
	// RecommendTimeout is the request timeout for the recommendation
	// service, in seconds
	RecommendTimeout int `mapstructure:"recommend_timeout"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:             defaultLogFile,
		LogLevel:            defaultLogLevel,
		LogFileMaxSize:      defaultLogFileMaxSize,
		LogFileMaxBackups:   defaultLogFileMaxBackups,
		LogFileMaxAge:       defaultLogFileMaxAge,
		LogCompress:         defaultLogCompress,
		DSN:                 defaultDSN,
		Port:                defaultPort,
		Host:                defaultHost,
		Data:                defaultData,
		WorkerPoolSize:      defaultWorkerPoolSize,
		MaxUploadSize:       defaultMaxUploadSize,
		PageSize:            defaultPageSize,
		RecommendServiceURL: defaultRecommendServiceURL,
		RecommendTimeout:    defaultRecommendTimeout,
	}
	return Opts
}
