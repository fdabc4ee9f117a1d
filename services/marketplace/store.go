package marketplace

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Listing is a marketplace row mirroring on-chain NFT state plus the
// off-chain metadata the storefront renders.
type Listing struct {
	ID           int64  `json:"id"`
	NftID        string `json:"nft_id"`
	Owner        string `json:"owner"`
	Price        string `json:"price"`
	Denom        string `json:"denom"`
	MetadataURI  string `json:"metadata_uri"`
	ImageURL     string `json:"image_url"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AiPrompt     string `json:"ai_prompt"`
	ModelVersion string `json:"model_version"`
	CreatedAt    string `json:"created_at"`
}

// Store persists listings in a local sqlite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the listings database at path and
// seeds a few demo rows when the table is empty.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nft_id TEXT UNIQUE,
			owner TEXT,
			price TEXT,
			denom TEXT,
			metadata_uri TEXT,
			image_url TEXT,
			name TEXT,
			description TEXT,
			ai_prompt TEXT,
			model_version TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create listings table: %w", err)
	}

	s := &Store{db: db}
	n, err := s.Count()
	if err != nil {
		db.Close()
		return nil, err
	}
	if n == 0 {
		if err := s.seed(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) seed() error {
	seeds := []Listing{
		{NftID: "1", Owner: "astra1ce6mua7l2tv", Price: "100", Denom: "uastra",
			MetadataURI: "ipfs://QmNeonNebula", ImageURL: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe",
			Name: "Neon Nebula", Description: "AI generated space art",
			AiPrompt: "A vibrant nebula with neon colors", ModelVersion: "v2.1"},
		{NftID: "2", Owner: "astra1k8d0s3jn5mt", Price: "250", Denom: "uastra",
			MetadataURI: "ipfs://QmCyberSamurai", ImageURL: "https://images.unsplash.com/photo-1633167606207-d840b5070fc2",
			Name: "Cyber Samurai", Description: "Futuristic warrior",
			AiPrompt: "A samurai in a cyberpunk city", ModelVersion: "v2.1"},
		{NftID: "3", Owner: "astra1qpzry9x8gf2", Price: "50", Denom: "uastra",
			MetadataURI: "ipfs://QmDigitalDream", ImageURL: "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e",
			Name: "Digital Dream", Description: "Abstract digital art",
			AiPrompt: "A dreamlike abstract landscape", ModelVersion: "v1.5"},
	}
	for _, l := range seeds {
		if err := s.Upsert(l); err != nil {
			return err
		}
	}
	return nil
}

// Upsert inserts or replaces the listing keyed by nft_id.
func (s *Store) Upsert(l Listing) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO listings
			(nft_id, owner, price, denom, metadata_uri, image_url, name, description, ai_prompt, model_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.NftID, l.Owner, l.Price, l.Denom, l.MetadataURI, l.ImageURL,
		l.Name, l.Description, l.AiPrompt, l.ModelVersion)
	if err != nil {
		return fmt.Errorf("upsert listing %s: %w", l.NftID, err)
	}
	return nil
}

// UpdatePrice changes the price of a listing, but only for its owner.
func (s *Store) UpdatePrice(nftID, owner, price string) error {
	_, err := s.db.Exec(
		"UPDATE listings SET price = ? WHERE nft_id = ? AND owner = ?",
		price, nftID, owner)
	if err != nil {
		return fmt.Errorf("update price for %s: %w", nftID, err)
	}
	return nil
}

// Delist removes a listing, but only for its owner.
func (s *Store) Delist(nftID, owner string) error {
	_, err := s.db.Exec(
		"DELETE FROM listings WHERE nft_id = ? AND owner = ?", nftID, owner)
	if err != nil {
		return fmt.Errorf("delist %s: %w", nftID, err)
	}
	return nil
}

// All returns every listing, newest first.
func (s *Store) All() ([]Listing, error) {
	rows, err := s.db.Query("SELECT id, nft_id, owner, price, denom, metadata_uri, image_url, name, description, ai_prompt, model_version, created_at FROM listings ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ID, &l.NftID, &l.Owner, &l.Price, &l.Denom,
			&l.MetadataURI, &l.ImageURL, &l.Name, &l.Description,
			&l.AiPrompt, &l.ModelVersion, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Get returns a single listing by nft_id.
func (s *Store) Get(nftID string) (Listing, bool, error) {
	var l Listing
	err := s.db.QueryRow(
		"SELECT id, nft_id, owner, price, denom, metadata_uri, image_url, name, description, ai_prompt, model_version, created_at FROM listings WHERE nft_id = ?",
		nftID).Scan(&l.ID, &l.NftID, &l.Owner, &l.Price, &l.Denom,
		&l.MetadataURI, &l.ImageURL, &l.Name, &l.Description,
		&l.AiPrompt, &l.ModelVersion, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return Listing{}, false, nil
	}
	if err != nil {
		return Listing{}, false, fmt.Errorf("get listing %s: %w", nftID, err)
	}
	return l, true, nil
}

// Count returns the number of listings.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
