package catalog

import (
	"github.com/greenlyfe/greenlyfe-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// DefaultSeed returns the built-in Greenlyfe inventory, used when no seed
// file is configured.
func DefaultSeed() []Product {
	price := decimal.RequireFromString
	return []Product{
		// Grãos e Sementes
		{
			ID:          "quinoa",
			Name:        "Quinoa Orgânica",
			Category:    enums.ProductCategoryGrains,
			Description: "Grãos de quinoa orgânica, ricos em proteínas e fibras. Perfeito para uma refeição saudável e completa.",
			Price:       price("25.50"),
			Unit:        enums.ProductUnitGram,
			Image:       "quinoa-grain",
		},
		{
			ID:          "chia",
			Name:        "Sementes de Chia",
			Category:    enums.ProductCategoryGrains,
			Description: "Sementes de chia ricas em ômega-3, fibras e antioxidantes. Ideal para adicionar em iogurtes e smoothies.",
			Price:       price("15.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "chia-seeds",
		},
		{
			ID:          "oats",
			Name:        "Aveia em Flocos",
			Category:    enums.ProductCategoryGrains,
			Description: "Aveia orgânica em flocos, fonte de energia de liberação lenta e fibras solúveis.",
			Price:       price("12.90"),
			Unit:        enums.ProductUnitGram,
			Image:       "oats",
		},
		{
			ID:          "linhaça-dourada",
			Name:        "Linhaça Dourada",
			Category:    enums.ProductCategoryGrains,
			Description: "Sementes de linhaça dourada, excelente fonte de fibras e ômega-3.",
			Price:       price("8.50"),
			Unit:        enums.ProductUnitGram,
			Image:       "flax-seeds",
		},
		{
			ID:          "amaranto",
			Name:        "Grão de Amaranto",
			Category:    enums.ProductCategoryGrains,
			Description: "Grão de amaranto sem glúten, rico em proteínas e aminoácidos essenciais.",
			Price:       price("18.75"),
			Unit:        enums.ProductUnitGram,
			Image:       "amaranth",
		},
		{
			ID:          "trigo-sarraceno",
			Name:        "Trigo Sarraceno",
			Category:    enums.ProductCategoryGrains,
			Description: "Trigo sarraceno orgânico, ideal para dietas sem glúten e rico em nutrientes.",
			Price:       price("22.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "buckwheat",
		},

		// Suplementos
		{
			ID:          "protein",
			Name:        "Proteína Vegana",
			Category:    enums.ProductCategorySupplements,
			Description: "Mix de proteínas vegetais (ervilha, arroz e chia) para recuperação muscular e aporte proteico.",
			Price:       price("99.90"),
			Unit:        enums.ProductUnitEach,
			Image:       "protein-powder",
		},
		{
			ID:          "vitamin-d",
			Name:        "Vitamina D3",
			Category:    enums.ProductCategorySupplements,
			Description: "Cápsulas de Vitamina D3 para saúde óssea e fortalecimento do sistema imunológico.",
			Price:       price("45.00"),
			Unit:        enums.ProductUnitEach,
			Image:       "vitamin-d",
		},
		{
			ID:          "omega-3",
			Name:        "Ômega 3",
			Category:    enums.ProductCategorySupplements,
			Description: "Suplemento de ômega 3 de óleo de peixe, essencial para a saúde do cérebro e coração.",
			Price:       price("65.00"),
			Unit:        enums.ProductUnitEach,
			Image:       "omega-3",
		},
		{
			ID:          "spirulina",
			Name:        "Spirulina em Pó",
			Category:    enums.ProductCategorySupplements,
			Description: "Spirulina orgânica em pó, superalimento rico em proteínas, vitaminas e minerais.",
			Price:       price("55.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "spirulina",
		},
		{
			ID:          "colageno",
			Name:        "Colágeno Hidrolisado",
			Category:    enums.ProductCategorySupplements,
			Description: "Colágeno hidrolisado para saúde da pele, cabelos e articulações.",
			Price:       price("75.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "collagen",
		},
		{
			ID:          "probiotico",
			Name:        "Probiótico 30 Bilhões",
			Category:    enums.ProductCategorySupplements,
			Description: "Cápsulas de probiótico com 30 bilhões de UFC para saúde intestinal.",
			Price:       price("89.90"),
			Unit:        enums.ProductUnitEach,
			Image:       "probiotic",
		},

		// Sucos e Bebidas
		{
			ID:          "green-juice",
			Name:        "Suco Verde Detox",
			Category:    enums.ProductCategoryJuices,
			Description: "Suco prensado a frio com couve, espinafre, maçã, pepino e limão. Revitalizante e nutritivo.",
			Price:       price("18.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "green-juice",
		},
		{
			ID:          "berry-shake",
			Name:        "Shake de Frutas Vermelhas",
			Category:    enums.ProductCategoryJuices,
			Description: "Shake antioxidante com morango, mirtilo, amora e banana. Uma explosão de sabor e saúde.",
			Price:       price("22.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "detox-shake",
		},
		{
			ID:          "energy-smoothie",
			Name:        "Smoothie Energético",
			Category:    enums.ProductCategoryJuices,
			Description: "Smoothie tropical com manga, abacaxi e maracujá. Perfeito para um boost de energia.",
			Price:       price("20.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "energy-smoothie",
		},
		{
			ID:          "suco-laranja-cenoura",
			Name:        "Suco de Laranja com Cenoura",
			Category:    enums.ProductCategoryJuices,
			Description: "Suco natural de laranja com cenoura, rico em vitamina A e C.",
			Price:       price("15.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "orange-carrot-juice",
		},
		{
			ID:          "shot-detox",
			Name:        "Shot Detox de Gengibre",
			Category:    enums.ProductCategoryJuices,
			Description: "Shot concentrado de gengibre e limão para imunidade e digestão.",
			Price:       price("12.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "ginger-shot",
		},
		{
			ID:          "agua-coco",
			Name:        "Água de Coco Natural",
			Category:    enums.ProductCategoryJuices,
			Description: "Água de coco 100% natural, isotônico natural rico em eletrólitos.",
			Price:       price("10.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "coconut-water",
		},

		// Castanhas e Oleaginosas
		{
			ID:          "castanha-para",
			Name:        "Castanha do Pará",
			Category:    enums.ProductCategoryNuts,
			Description: "Castanha do Pará orgânica, uma das melhores fontes naturais de selênio.",
			Price:       price("35.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "brazil-nuts",
		},
		{
			ID:          "amendoas",
			Name:        "Amêndoas Cruas",
			Category:    enums.ProductCategoryNuts,
			Description: "Amêndoas cruas e sem sal, ricas em vitamina E e gorduras boas.",
			Price:       price("28.50"),
			Unit:        enums.ProductUnitGram,
			Image:       "almonds",
		},
		{
			ID:          "nozes",
			Name:        "Nozes Pecan",
			Category:    enums.ProductCategoryNuts,
			Description: "Nozes pecan selecionadas, perfeitas para lanches e receitas.",
			Price:       price("42.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "pecan-nuts",
		},
		{
			ID:          "castanha-caju",
			Name:        "Castanha de Caju",
			Category:    enums.ProductCategoryNuts,
			Description: "Castanha de caju torrada sem sal, fonte de zinco e magnésio.",
			Price:       price("25.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "cashew-nuts",
		},

		// Óleos e Manteigas
		{
			ID:          "azeite-extra-virgem",
			Name:        "Azeite Extra Virgem",
			Category:    enums.ProductCategoryOils,
			Description: "Azeite extra virgem prensado a frio, ideal para saladas e finalizações.",
			Price:       price("45.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "olive-oil",
		},
		{
			ID:          "oleo-coco",
			Name:        "Óleo de Coco Extra Virgem",
			Category:    enums.ProductCategoryOils,
			Description: "Óleo de coco extra virgem orgânico, versátil para culinária e cuidados pessoais.",
			Price:       price("38.00"),
			Unit:        enums.ProductUnitMilliliter,
			Image:       "coconut-oil",
		},
		{
			ID:          "manteiga-amendoim",
			Name:        "Manteiga de Amendoim Natural",
			Category:    enums.ProductCategoryOils,
			Description: "Manteiga de amendoim 100% natural, sem açúcar ou conservantes.",
			Price:       price("22.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "peanut-butter",
		},

		// Farinhas e Bases
		{
			ID:          "farinha-amendoa",
			Name:        "Farinha de Amêndoa",
			Category:    enums.ProductCategoryFlours,
			Description: "Farinha de amêndoa fina, ideal para receitas low-carb e sem glúten.",
			Price:       price("32.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "almond-flour",
		},
		{
			ID:          "farinha-coco",
			Name:        "Farinha de Coco",
			Category:    enums.ProductCategoryFlours,
			Description: "Farinha de coco orgânica, rica em fibras e pobre em carboidratos.",
			Price:       price("28.50"),
			Unit:        enums.ProductUnitGram,
			Image:       "coconut-flour",
		},
		{
			ID:          "farinha-aveia",
			Name:        "Farinha de Aveia",
			Category:    enums.ProductCategoryFlours,
			Description: "Farinha de aveia integral, perfeita para panquecas e bolos saudáveis.",
			Price:       price("15.00"),
			Unit:        enums.ProductUnitGram,
			Image:       "oat-flour",
		},
	}
}
