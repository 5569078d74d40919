// This file seeds a newly created profile with its default board and
// gamification state. Seeding is claimed through a sentinel row inserted
// at the head of the seeding transaction, so two concurrent seeders cannot
// both pass an emptiness check and double-insert.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// Seed mark scopes, one per independently guarded seeding unit.
const (
	seedScopeBoard        = "board"
	seedScopeAchievements = "achievements"
	seedScopeGoals        = "goals"
	seedScopeCoins        = "coins"
	seedScopeRewards      = "rewards"
)

// startingCoins is the balance a fresh profile begins with.
const startingCoins = 100

// defaultPIN gates caregiver mode until the caregiver picks their own.
const defaultPIN = "1234"

// seedCategory describes one default category and its symbols.
type seedCategory struct {
	key     string
	name    string
	color   string
	symbols []string
}

// defaultBoard is the category and symbol set every new profile starts
// with. Symbol positions are their index within the category.
var defaultBoard = []seedCategory{
	{
		key: "quero", name: "Eu Quero", color: types.ColorRose,
		symbols: []string{
			"Água", "Comida", "Brincar", "Dormir", "Sair", "Assistir TV",
			"Música", "Abraço", "Ajuda", "Banho", "Ler", "Bicicleta",
		},
	},
	{
		key: "sinto", name: "Eu Sinto", color: types.ColorAmber,
		symbols: []string{
			"Feliz", "Triste", "Bravo", "Cansado", "Sono", "Doente",
			"Fome", "Sede", "Animado", "Nervoso", "Medo", "Amor",
		},
	},
	{
		key: "preciso", name: "Eu Preciso", color: types.ColorSky,
		symbols: []string{
			"Banheiro", "Água", "Comida", "Ajuda", "Descansar", "Conversar",
			"Médico", "Ligar", "Sair", "Silêncio", "Luz", "Chave",
		},
	},
	{
		key: "geral", name: "Geral", color: types.ColorSlate,
		symbols: []string{
			"Eu", "Sim", "Não", "Por favor", "Obrigado", "Água",
		},
	},
	{
		key: "comida", name: "Comida", color: types.ColorOrange,
		symbols: []string{
			"Água", "Leite", "Fruta", "Banana", "Sorvete", "Pizza",
			"Sanduíche", "Biscoito", "Bolo", "Pão", "Arroz", "Macarrão",
		},
	},
	{
		key: "brincar", name: "Brincar", color: types.ColorGreen,
		symbols: []string{
			"Bola", "Carrinho", "Jogo", "Dados", "Quebra-cabeça", "Música",
			"Livro", "Bicicleta", "Boneca", "Parque", "Pintar", "Correr",
		},
	},
	{
		key: "casa", name: "Casa", color: types.ColorViolet,
		symbols: []string{
			"Quarto", "Sala", "Banheiro", "Cozinha", "Televisão", "Cama",
			"Sofá", "Mesa", "Cadeira", "Porta", "Janela", "Luz",
		},
	},
	{
		key: "escola", name: "Escola", color: types.ColorBlue,
		symbols: []string{
			"Lápis", "Caderno", "Professor", "Colega", "Recreio", "Estudar",
			"Livro", "Mochila",
		},
	},
	{
		key: "familia", name: "Família", color: types.ColorTeal,
		symbols: []string{
			"Mamãe", "Papai", "Irmão", "Irmã", "Avô", "Avó",
			"Primo", "Tio", "Tia",
		},
	},
}

// defaultAchievements are the one-way unlocks every profile starts with.
var defaultAchievements = []types.Achievement{
	{AchievementID: "achievement_first_phrase", Name: "Primeira Comunicação", Description: "Crie sua primeira frase", Reward: 15},
	{AchievementID: "achievement_10_phrases", Name: "Comunicador Iniciante", Description: "Crie 10 frases", Reward: 25},
	{AchievementID: "achievement_custom_symbol", Name: "Mundo Personalizado", Description: "Crie seu primeiro símbolo", Reward: 30},
}

// defaultGoals are the recurring daily targets.
var defaultGoals = []types.DailyGoal{
	{GoalID: "goal_phrases", Name: "Crie 3 frases", Target: 3, Reward: 10},
	{GoalID: "goal_symbols", Name: "Use 10 símbolos", Target: 10, Reward: 15},
	{GoalID: "goal_categories", Name: "Explore 2 categorias", Target: 2, Reward: 5},
}

// SeedProfile populates the default board and gamification records for a
// profile. Each seeding unit is guarded independently, so a run that was
// interrupted after seeding coins still completes the rest on retry.
// Re-invocation once everything is seeded is a no-op, not an error.
func (s *Store) SeedProfile(profileID string) error {
	if profileID == "" {
		return types.ErrInvalidID
	}
	return s.withTx(func(tx *sql.Tx) error {
		return seedProfileTx(tx, profileID, time.Now())
	})
}

// seedProfileTx runs every seeding unit inside the caller's transaction.
func seedProfileTx(tx *sql.Tx, profileID string, now time.Time) error {
	if err := seedBoardTx(tx, profileID, now); err != nil {
		return fmt.Errorf("seeding board: %w", err)
	}
	if err := seedGamificationTx(tx, profileID, now); err != nil {
		return fmt.Errorf("seeding gamification: %w", err)
	}
	return nil
}

// claimSeed inserts the sentinel row for (profile, scope). Returns false
// if the scope was already claimed, in which case the caller skips its
// inserts.
func claimSeed(tx *sql.Tx, profileID, scope string) (bool, error) {
	res, err := tx.Exec(
		`INSERT OR IGNORE INTO seed_marks (profile_id, scope) VALUES (?, ?)`,
		profileID, scope,
	)
	if err != nil {
		return false, fmt.Errorf("claiming seed %s: %w", scope, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// seedBoardTx inserts the default categories and symbols. Skipped when the
// board was already claimed or the profile already has categories (for
// example from an imported backup).
func seedBoardTx(tx *sql.Tx, profileID string, now time.Time) error {
	claimed, err := claimSeed(tx, profileID, seedScopeBoard)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	var count int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE profile_id = ?`, profileID,
	).Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	ts := formatTime(now)
	for _, cat := range defaultBoard {
		if _, err := tx.Exec(
			`INSERT INTO categories (category_id, profile_id, key, name, color, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			newID(), profileID, cat.key, cat.name, cat.color, ts,
		); err != nil {
			return fmt.Errorf("seeding category %s: %w", cat.key, err)
		}
		for i, text := range cat.symbols {
			if _, err := tx.Exec(
				`INSERT INTO symbols (symbol_id, profile_id, category_key, text, position, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				newID(), profileID, cat.key, text, i, ts,
			); err != nil {
				return fmt.Errorf("seeding symbol %q: %w", text, err)
			}
		}
	}
	return nil
}

// seedGamificationTx seeds achievements, goals, coins, and reward packs,
// each behind its own claim so partial prior seeding completes on retry.
func seedGamificationTx(tx *sql.Tx, profileID string, now time.Time) error {
	today := now.Format("2006-01-02")

	claimed, err := claimSeed(tx, profileID, seedScopeAchievements)
	if err != nil {
		return err
	}
	if claimed {
		for _, a := range defaultAchievements {
			if _, err := tx.Exec(
				`INSERT INTO achievements (achievement_id, profile_id, name, description, reward, unlocked)
				 VALUES (?, ?, ?, ?, ?, 0)`,
				a.AchievementID, profileID, a.Name, a.Description, a.Reward,
			); err != nil {
				return fmt.Errorf("seeding achievement %s: %w", a.AchievementID, err)
			}
		}
	}

	claimed, err = claimSeed(tx, profileID, seedScopeGoals)
	if err != nil {
		return err
	}
	if claimed {
		for _, g := range defaultGoals {
			if _, err := tx.Exec(
				`INSERT INTO daily_goals (goal_id, profile_id, name, target, current, reward, completed, last_updated)
				 VALUES (?, ?, ?, ?, 0, ?, 0, ?)`,
				g.GoalID, profileID, g.Name, g.Target, g.Reward, today,
			); err != nil {
				return fmt.Errorf("seeding goal %s: %w", g.GoalID, err)
			}
		}
	}

	claimed, err = claimSeed(tx, profileID, seedScopeCoins)
	if err != nil {
		return err
	}
	if claimed {
		if _, err := tx.Exec(
			`INSERT INTO coins (profile_id, total) VALUES (?, ?)`,
			profileID, startingCoins,
		); err != nil {
			return fmt.Errorf("seeding coins: %w", err)
		}
	}

	claimed, err = claimSeed(tx, profileID, seedScopeRewards)
	if err != nil {
		return err
	}
	if claimed {
		for _, r := range defaultRewards {
			if _, err := tx.Exec(
				`INSERT INTO rewards (reward_id, profile_id, name, cost, purchased)
				 VALUES (?, ?, ?, ?, 0)`,
				r.RewardID, profileID, r.Name, r.Cost,
			); err != nil {
				return fmt.Errorf("seeding reward %s: %w", r.RewardID, err)
			}
		}
	}

	return nil
}

// seedSecurity inserts the default caregiver PIN once per database.
func (s *Store) seedSecurity() error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO security (id, pin) VALUES (1, ?)`, defaultPIN,
	)
	return err
}

// DefaultCategoryKeys returns the seeded category keys in board order.
func DefaultCategoryKeys() []string {
	keys := make([]string, 0, len(defaultBoard))
	for _, c := range defaultBoard {
		keys = append(keys, c.key)
	}
	return keys
}
