package gate

// DefaultSensitiveNames returns the built-in denylist of sensitive
// filenames. Entries are bare filenames, never paths or patterns, and are
// matched case-insensitively against the base name of the requested file.
func DefaultSensitiveNames() []string {
	return []string{
		// Environment files
		".env",
		".env.local",
		".env.development",
		".env.production",
		".env.test",

		// Credential and key material
		"credentials",
		"credentials.json",
		"secrets.json",
		"api_keys.json",
		"service_account.json",
		"private_key.pem",
		"private.key",
		"secret.key",
		"id_rsa",
		"id_rsa.pub",
		"id_ecdsa",
		"id_ecdsa.pub",
		"id_ed25519",
		"id_ed25519.pub",

		// Plaintext secrets
		"password.txt",
		"passwords.txt",
		"secret.txt",
		"secrets.txt",
		"token.txt",
		"重要資訊.txt",

		// Application and database configuration
		"config.json",
		"database.yml",
		"db_config.json",

		// Tool credential files
		".netrc",
		".npmrc",
		".pypirc",
		".pgpass",
		".htpasswd",
	}
}
