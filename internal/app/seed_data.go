package app

import (
	"fmt"

	"github.com/SWiseG/QuizLoop/internal/domain"
)

// SeedCatalog returns the built-in question bank used to populate an empty
// store on first read. Each question carries en and pt-br translations.
func SeedCatalog() []domain.Question {
	seeds := []seedQuestion{
		{
			category: "Science", difficulty: "Easy", correct: 2,
			en:   translation{"Which planet is known as the Red Planet?", []string{"Venus", "Jupiter", "Mars", "Saturn"}, "Mars appears red because of iron oxide on its surface."},
			ptBR: translation{"Qual planeta é conhecido como Planeta Vermelho?", []string{"Vênus", "Júpiter", "Marte", "Saturno"}, "Marte parece vermelho por causa do óxido de ferro em sua superfície."},
		},
		{
			category: "History", difficulty: "Medium", correct: 2,
			en:   translation{"In which year did World War II end?", []string{"1943", "1944", "1945", "1946"}, "The formal surrender happened in September 1945."},
			ptBR: translation{"Em que ano a Segunda Guerra Mundial terminou?", []string{"1943", "1944", "1945", "1946"}, "A rendição formal aconteceu em setembro de 1945."},
		},
		{
			category: "Sports", difficulty: "Easy", correct: 1,
			en:   translation{"Which country won the FIFA World Cup in 2022?", []string{"France", "Argentina", "Brazil", "Germany"}, "Argentina won the title in Qatar."},
			ptBR: translation{"Qual país venceu a Copa do Mundo FIFA em 2022?", []string{"França", "Argentina", "Brasil", "Alemanha"}, "A Argentina venceu o título no Catar."},
		},
		{
			category: "Geography", difficulty: "Easy", correct: 1,
			en:   translation{"What is the smallest country in the world?", []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, "Vatican City is about 0.44 square kilometers."},
			ptBR: translation{"Qual é o menor país do mundo?", []string{"Mônaco", "Cidade do Vaticano", "San Marino", "Liechtenstein"}, "A Cidade do Vaticano tem cerca de 0,44 quilômetros quadrados."},
		},
		{
			category: "Science", difficulty: "Easy", correct: 2,
			en:   translation{"What is the chemical symbol for gold?", []string{"Go", "Gd", "Au", "Ag"}, "Au comes from the Latin word aurum."},
			ptBR: translation{"Qual é o símbolo químico do ouro?", []string{"Go", "Gd", "Au", "Ag"}, "Au vem da palavra latina aurum."},
		},
		{
			category: "History", difficulty: "Easy", correct: 2,
			en:   translation{"Who painted the Mona Lisa?", []string{"Michelangelo", "Raphael", "Leonardo da Vinci", "Donatello"}, "Leonardo da Vinci painted the Mona Lisa."},
			ptBR: translation{"Quem pintou a Mona Lisa?", []string{"Michelangelo", "Rafael", "Leonardo da Vinci", "Donatello"}, "Leonardo da Vinci pintou a Mona Lisa."},
		},
		{
			category: "Science", difficulty: "Medium", correct: 1,
			en:   translation{"What is the hardest natural substance on Earth?", []string{"Titanium", "Diamond", "Quartz", "Obsidian"}, "Diamond ranks highest on the Mohs scale."},
			ptBR: translation{"Qual é a substância natural mais dura da Terra?", []string{"Titânio", "Diamante", "Quartzo", "Obsidiana"}, "O diamante ocupa a posição mais alta na escala de Mohs."},
		},
		{
			category: "Geography", difficulty: "Medium", correct: 1,
			en:   translation{"Which river is the longest in the world?", []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, "The Nile is traditionally listed as the longest river."},
			ptBR: translation{"Qual é o rio mais longo do mundo?", []string{"Amazonas", "Nilo", "Yangtzé", "Mississippi"}, "O Nilo é tradicionalmente listado como o rio mais longo."},
		},
		{
			category: "Technology", difficulty: "Easy", correct: 2,
			en:   translation{"Who co-founded Apple Inc.?", []string{"Bill Gates", "Mark Zuckerberg", "Steve Jobs", "Jeff Bezos"}, "Apple was founded by Steve Jobs, Steve Wozniak, and Ronald Wayne."},
			ptBR: translation{"Quem cofundou a Apple Inc.?", []string{"Bill Gates", "Mark Zuckerberg", "Steve Jobs", "Jeff Bezos"}, "A Apple foi fundada por Steve Jobs, Steve Wozniak e Ronald Wayne."},
		},
		{
			category: "Science", difficulty: "Easy", correct: 2,
			en:   translation{"What gas do plants primarily absorb from the atmosphere?", []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, "Plants absorb carbon dioxide for photosynthesis."},
			ptBR: translation{"Qual gás as plantas absorvem principalmente da atmosfera?", []string{"Oxigênio", "Nitrogênio", "Dióxido de Carbono", "Hidrogênio"}, "As plantas absorvem dióxido de carbono para a fotossíntese."},
		},
		{
			category: "Entertainment", difficulty: "Medium", correct: 2,
			en:   translation{"Which movie won the Oscar for Best Picture in 2020?", []string{"1917", "Joker", "Parasite", "Ford v Ferrari"}, "Parasite became the first non-English language winner."},
			ptBR: translation{"Qual filme ganhou o Oscar de Melhor Filme em 2020?", []string{"1917", "Coringa", "Parasita", "Ford vs Ferrari"}, "Parasita se tornou o primeiro vencedor em idioma não inglês."},
		},
		{
			category: "Math", difficulty: "Easy", correct: 1,
			en:   translation{"What is the value of pi rounded to two decimal places?", []string{"3.12", "3.14", "3.16", "3.18"}, "Pi is approximately 3.14159."},
			ptBR: translation{"Qual é o valor de pi arredondado para duas casas decimais?", []string{"3,12", "3,14", "3,16", "3,18"}, "Pi é aproximadamente 3,14159."},
		},
	}

	questions := make([]domain.Question, 0, len(seeds))
	for i, s := range seeds {
		questions = append(questions, domain.Question{
			ID:           fmt.Sprintf("seed-%d", i+1),
			Category:     s.category,
			CorrectIndex: s.correct,
			Difficulty:   s.difficulty,
			Translations: []domain.QuestionTranslation{
				{Locale: "en", Text: s.en.text, Options: s.en.options, Explanation: s.en.explanation},
				{Locale: "pt-br", Text: s.ptBR.text, Options: s.ptBR.options, Explanation: s.ptBR.explanation},
			},
		})
	}
	return questions
}

type seedQuestion struct {
	category   string
	difficulty string
	correct    int
	en         translation
	ptBR       translation
}

type translation struct {
	text        string
	options     []string
	explanation string
}
