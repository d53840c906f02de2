package compose

// Engine assembles the complete FileSet for a validated configuration.
// It holds no state across invocations and caches nothing; Compose is a
// pure function of its input except for drawing the signing secret.
type Engine struct {
	secretSource func() (string, error)
}

// NewEngine creates an Engine drawing secrets from crypto/rand.
func NewEngine() *Engine {
	return &Engine{secretSource: GenerateSecretKey}
}

// NewEngineWithSecretSource creates an Engine with a custom secret
// source. Tests use this to make composition fully deterministic.
func NewEngineWithSecretSource(source func() (string, error)) *Engine {
	return &Engine{secretSource: source}
}

// Output paths of the generated skeleton.
const (
	PathGitignore    = ".gitignore"
	PathEnv          = ".env"
	PathRequirements = "requirements.txt"
	PathAppInit      = "app/__init__.py"
	PathMain         = "app/main.py"
	PathDatabase     = "app/database.py"
	PathModels       = "app/models.py"
	PathSchemas      = "app/schemas.py"
	PathUtils        = "app/utils.py"
	PathOAuth2       = "app/oauth2.py"
	PathRoutersInit  = "app/routers/__init__.py"
	PathAuthRouter   = "app/routers/auth.py"
)

// Compose derives the FileSet for the configuration. The fixed
// canonical precedence — database fragment, auth fragment, feature
// fragments in enumeration order — makes the output independent of the
// order features were supplied: two configurations with the same
// feature set compose to byte-identical files apart from the secret.
func (e *Engine) Compose(cfg ProjectConfig) (FileSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	secret, err := e.secretSource()
	if err != nil {
		return nil, err
	}

	db := databaseFragment(cfg.Database)
	auth := authFragment(cfg.Auth)

	fs := FileSet{
		PathGitignore:    asset("gitignore"),
		PathEnv:          renderEnvFile(secret, db),
		PathRequirements: mergeRequirements(requirementFragments(cfg)...),
		PathAppInit:      "",
		PathMain:         renderEntryPoint(cfg),
		PathSchemas:      asset("schemas.py"),
		PathRoutersInit:  "",
	}

	// Data-access module, plus the schema-module override document and
	// schemaless backends carry. Relational backends use the default
	// relational model.
	for path, content := range db.Files {
		fs[path] = content
	}
	if !fs.Has(PathModels) {
		fs[PathModels] = asset("models_sql.py")
	}

	// Hashing helpers exist exactly when the project hashes passwords
	// locally; otherwise the module is an empty placeholder.
	if cfg.needsLocalHashing() {
		fs[PathUtils] = asset("utils.py")
	} else {
		fs[PathUtils] = ""
	}

	// Identity module and router, only when auth is enabled. The router
	// body follows the database-overrides-auth precedence.
	if cfg.Auth != AuthNone {
		for path, content := range auth.Files {
			fs[path] = content
		}
		fs[PathAuthRouter] = routerAsset(cfg)
	}

	// Feature auxiliary files, in canonical order.
	for _, f := range cfg.selectedFeatures() {
		for path, content := range featureFragment(f).Aux {
			fs[path] = content
		}
	}

	return fs, nil
}
