package db

// CmdOpts specifies the connection related command-line options
type CmdOpts struct {
	Connection string `short:"c" long:"connection" yaml:"connection" description:"A postgres connection string to use, overrides any other parameters" env:"PGPROBE_CONNECTION"`
	User       string `short:"u" long:"user" yaml:"user" description:"Postgres user" env:"PGPROBE_USER"`
	Password   string `short:"p" long:"password" yaml:"password" description:"Postgres password" env:"PGPROBE_PASSWORD"`
	Hostname   string `short:"h" long:"hostname" yaml:"hostname" description:"Hostname to login to" default:"localhost" env:"PGPROBE_HOSTNAME"`
	Port       int    `short:"P" long:"port" yaml:"port" description:"Database port" default:"5432" env:"PGPROBE_PORT"`
	Database   string `short:"d" long:"db" yaml:"db" description:"Database name" default:"postgres" env:"PGPROBE_DB"`
	Timeout    int    `short:"T" long:"timeout" yaml:"timeout" description:"Connection timeout (seconds)" env:"PGPROBE_TIMEOUT"`
}
