// This file defines the purchasable symbol packs. Pack positions start at
// disjoint hundreds so installed packs never interleave with seeded board
// positions.
package sqlite

import "github.com/meumundo/simbolos/pkg/types"

// symbolPack bundles the category and symbols a reward unlocks.
type symbolPack struct {
	category seedCategory
	base     int64 // starting position for the pack's symbols
}

// defaultRewards is the store catalog seeded for every profile.
var defaultRewards = []types.Reward{
	{RewardID: "pack_animals", Name: "Animais", Cost: 150},
	{RewardID: "pack_toys", Name: "Brinquedos", Cost: 150},
	{RewardID: "pack_vehicles", Name: "Veículos", Cost: 200},
	{RewardID: "pack_clothing", Name: "Roupas", Cost: 200},
	{RewardID: "pack_weather", Name: "Clima", Cost: 100},
}

// rewardPacks maps reward IDs to the content installed on purchase.
var rewardPacks = map[string]symbolPack{
	"pack_animals": {
		base: 100,
		category: seedCategory{
			key: "animais", name: "Animais", color: types.ColorOrange,
			symbols: []string{
				"Cachorro", "Gato", "Pássaro", "Peixe", "Leão",
				"Macaco", "Elefante", "Girafa", "Vaca", "Pinto",
			},
		},
	},
	"pack_toys": {
		base: 200,
		category: seedCategory{
			key: "brinquedos", name: "Brinquedos", color: types.ColorRose,
			symbols: []string{
				"Bola", "Boneca", "Carrinho", "Lego", "Videogame",
				"Quebra-cabeça", "Urso de Pelúcia", "Pipa", "Bicicleta", "Skate",
			},
		},
	},
	"pack_vehicles": {
		base: 300,
		category: seedCategory{
			key: "veiculos", name: "Veículos", color: types.ColorSky,
			symbols: []string{
				"Carro", "Ônibus", "Avião", "Barco", "Moto",
				"Trator", "Caminhão", "Helicóptero", "Trem", "Foguete",
			},
		},
	},
	"pack_clothing": {
		base: 400,
		category: seedCategory{
			key: "roupas", name: "Roupas", color: types.ColorViolet,
			symbols: []string{
				"Camisa", "Calça", "Vestido", "Saia", "Sapato",
				"Meia", "Chapéu", "Casaco", "Pijama", "Luvas",
			},
		},
	},
	"pack_weather": {
		base: 500,
		category: seedCategory{
			key: "clima", name: "Clima", color: types.ColorTeal,
			symbols: []string{
				"Sol", "Chuva", "Nuvem", "Vento", "Neve",
			},
		},
	},
}

// PackSize returns how many symbols a reward installs; 0 for an unknown
// reward.
func PackSize(rewardID string) int {
	return len(rewardPacks[rewardID].category.symbols)
}
