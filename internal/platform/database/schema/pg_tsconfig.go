package schema

// PgTSConfigTable represents the 'pg_catalog.pg_ts_config' system catalog
type PgTSConfigTable struct {
	Table   string
	CfgName string
}

// PgTSConfig lists the text search configurations known to the server
var PgTSConfig = PgTSConfigTable{
	Table:   "pg_catalog.pg_ts_config",
	CfgName: "cfgname",
}
