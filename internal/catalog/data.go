package catalog

// attractions is the embedded reference dataset. It is validated and frozen
// by New at startup; nothing mutates it afterwards. Origins for transport
// options are fixed: Copacabana and Ipanema, where most visitors stay.
var attractions = []Attraction{
	{
		ID:          "cristo-redentor",
		Name:        "Cristo Redentor",
		Description: "A estátua art déco de 38 metros no topo do Corcovado, eleita uma das Sete Maravilhas do Mundo Moderno, com vista de 360 graus sobre a cidade, a Baía de Guanabara e a Floresta da Tijuca.",
		Category:    CategoryMonument,
		Coordinates: Coordinates{Latitude: -22.9519, Longitude: -43.2105},
		Image:       "https://images.rioguia.app/attractions/cristo-redentor.jpg",
		Cost: Cost{
			AmountBRL:   97.50,
			AmountUSD:   20,
			Description: "Trem do Corcovado ida e volta, alta temporada",
		},
		BestTime: BestTime{
			Hours:  "08:00-10:00",
			Reason: "Menos filas e o nevoeiro da tarde ainda não subiu",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "trem", Duration: "45 min", CostBRL: 97.50, Notes: "Metrô até Largo do Machado e van oficial até a estação do trem"},
				{Mode: "taxi", Duration: "30 min", CostBRL: 45, Notes: "Até o centro de visitantes do Paineiras"},
			},
			FromIpanema: []TransportOption{
				{Mode: "trem", Duration: "55 min", CostBRL: 97.50},
				{Mode: "uber", Duration: "35 min", CostBRL: 50},
			},
		},
		Tags:          []string{"cristo", "corcovado", "mirante", "estatua", "maravilha"},
		SafetyNotes:   "Área turística policiada; cuidado apenas com o vidro do carro no trânsito da subida.",
		LocalTips:     "Compre o bilhete do trem com hora marcada pelo site para não enfrentar fila.",
		VisitDuration: "2-3 horas",
	},
	{
		ID:          "pao-de-acucar",
		Name:        "Pão de Açúcar",
		Description: "O bondinho centenário sobe em dois trechos até o morro de granito na entrada da Baía de Guanabara. O pôr do sol visto do alto, com o Cristo ao fundo, é o cartão-postal definitivo do Rio.",
		Category:    CategoryMonument,
		Coordinates: Coordinates{Latitude: -22.9486, Longitude: -43.1566},
		Image:       "https://images.rioguia.app/attractions/pao-de-acucar.jpg",
		Cost: Cost{
			AmountBRL:   160,
			AmountUSD:   32,
			Description: "Bondinho completo, ida e volta",
		},
		BestTime: BestTime{
			Hours:  "16:00-18:30",
			Reason: "Chegar antes do pôr do sol e descer com a cidade iluminada",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "onibus", Duration: "25 min", CostBRL: 4.70, Notes: "Linha 513 até a Praia Vermelha"},
				{Mode: "taxi", Duration: "15 min", CostBRL: 25},
			},
			FromIpanema: []TransportOption{
				{Mode: "uber", Duration: "25 min", CostBRL: 30},
				{Mode: "onibus", Duration: "40 min", CostBRL: 4.70},
			},
		},
		Tags:          []string{"bondinho", "urca", "mirante", "por-do-sol"},
		LocalTips:     "A trilha da Praia Vermelha ao Morro da Urca é gratuita; dali dá para comprar só o segundo trecho do bondinho.",
		VisitDuration: "2-3 horas",
	},
	{
		ID:          "praia-de-copacabana",
		Name:        "Praia de Copacabana",
		Description: "Quatro quilômetros de areia entre o Leme e o Forte, com o calçadão de pedras portuguesas desenhado por Burle Marx, quiosques, vôlei de praia e o réveillon mais famoso do mundo.",
		Category:    CategoryBeach,
		Coordinates: Coordinates{Latitude: -22.9711, Longitude: -43.1822},
		Image:       "https://images.rioguia.app/attractions/copacabana.jpg",
		Cost: Cost{
			AmountBRL:   0,
			AmountUSD:   0,
			Description: "Entrada livre; cadeira e guarda-sol alugados na areia",
		},
		BestTime: BestTime{
			Hours:  "07:00-11:00",
			Reason: "Mar mais calmo e areia ainda sem o calor forte da tarde",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "a pé", Duration: "5 min", CostBRL: 0},
			},
			FromIpanema: []TransportOption{
				{Mode: "a pé", Duration: "20 min", CostBRL: 0, Notes: "Pelo Arpoador, vale o desvio"},
				{Mode: "metro", Duration: "10 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"praia", "calcadao", "reveillon", "quiosque"},
		SafetyNotes:   "Não leve objetos de valor para a areia; atenção redobrada após o anoitecer.",
		LocalTips:     "O posto 6, perto do Forte, é o trecho mais tranquilo para famílias.",
		VisitDuration: "meio dia",
	},
	{
		ID:          "praia-de-ipanema",
		Name:        "Praia de Ipanema",
		Description: "A praia da bossa nova, dividida por postos que marcam tribos: o 9 da juventude, o 8 da comunidade LGBT+, o Arpoador das ondas e do aplauso ao pôr do sol.",
		Category:    CategoryBeach,
		Coordinates: Coordinates{Latitude: -22.9838, Longitude: -43.2096},
		Image:       "https://images.rioguia.app/attractions/ipanema.jpg",
		Cost: Cost{
			AmountBRL:   0,
			AmountUSD:   0,
			Description: "Entrada livre",
		},
		BestTime: BestTime{
			Hours:  "16:00-18:30",
			Reason: "O pôr do sol aplaudido na pedra do Arpoador",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "a pé", Duration: "20 min", CostBRL: 0},
				{Mode: "metro", Duration: "10 min", CostBRL: 7.50, Notes: "Estação General Osório"},
			},
			FromIpanema: []TransportOption{
				{Mode: "a pé", Duration: "5 min", CostBRL: 0},
			},
		},
		Tags:          []string{"praia", "arpoador", "por-do-sol", "bossa-nova"},
		SafetyNotes:   "Mesmas precauções de qualquer praia urbana: nada de valor na areia.",
		LocalTips:     "Prove o mate com limão e o biscoito Globo dos vendedores ambulantes.",
		VisitDuration: "meio dia",
	},
	{
		ID:          "sambodromo",
		Name:        "Sambódromo da Marquês de Sapucaí",
		Description: "A passarela do samba projetada por Oscar Niemeyer, palco dos desfiles das escolas de samba no Carnaval. Fora da temporada funciona para eventos e visitação ao Museu do Samba.",
		Category:    CategoryCarnival,
		Coordinates: Coordinates{Latitude: -22.9122, Longitude: -43.1966},
		Image:       "https://images.rioguia.app/attractions/sambodromo.jpg",
		Cost: Cost{
			AmountBRL:   150,
			AmountUSD:   30,
			Description: "Arquibancada popular no desfile; setores variam muito",
		},
		BestTime: BestTime{
			Hours:  "21:00-05:00",
			Reason: "Os desfiles do grupo especial atravessam a madrugada",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "30 min", CostBRL: 7.50, Notes: "Estação Central ou Praça Onze conforme o setor"},
				{Mode: "taxi", Duration: "25 min", CostBRL: 40, Notes: "No Carnaval o trânsito fecha cedo"},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "40 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"carnaval", "samba", "desfile", "sapucai", "niemeyer"},
		SafetyNotes:   "No desfile use o metrô e saia em grupo; a região é deserta fora do Carnaval.",
		LocalTips:     "Setor 9 fica de frente para a torre de TV, onde as escolas param para a câmera.",
		VisitDuration: "uma noite",
	},
	{
		ID:          "escadaria-selaron",
		Name:        "Escadaria Selarón",
		Description: "Os 215 degraus entre a Lapa e Santa Teresa que o artista chileno Jorge Selarón cobriu com azulejos de mais de 60 países, num trabalho contínuo de 1990 até sua morte em 2013.",
		Category:    CategoryHistorical,
		Coordinates: Coordinates{Latitude: -22.9151, Longitude: -43.1792},
		Image:       "https://images.rioguia.app/attractions/escadaria-selaron.jpg",
		Cost: Cost{
			AmountBRL:   0,
			AmountUSD:   0,
			Description: "Logradouro público",
		},
		BestTime: BestTime{
			Hours:  "09:00-11:00",
			Reason: "Luz boa para fotos antes da multidão do meio-dia",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "25 min", CostBRL: 7.50, Notes: "Estação Cinelândia e 10 minutos a pé pela Lapa"},
				{Mode: "uber", Duration: "20 min", CostBRL: 28},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "35 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"lapa", "azulejos", "arte", "escadaria", "santa-teresa"},
		SafetyNotes:   "Fique na parte baixa da escadaria em grupo; evite exibir celular na Lapa à noite.",
		LocalTips:     "Procure os azulejos da grávida, assinatura recorrente do Selarón.",
		VisitDuration: "1 hora",
	},
	{
		ID:          "bonde-de-santa-teresa",
		Name:        "Bonde de Santa Teresa",
		Description: "O último bonde urbano do Brasil cruza os Arcos da Lapa e sobe as ladeiras de Santa Teresa, bairro boêmio de ateliês, casarões e botequins com vista para o centro.",
		Category:    CategoryHistorical,
		Coordinates: Coordinates{Latitude: -22.9208, Longitude: -43.1884},
		Image:       "https://images.rioguia.app/attractions/bonde-santa-teresa.jpg",
		Cost: Cost{
			AmountBRL:   20,
			AmountUSD:   4,
			Description: "Ida e volta no bonde",
		},
		BestTime: BestTime{
			Hours:  "10:00-16:00",
			Reason: "O bonde só circula de dia e o último horário enche",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "25 min", CostBRL: 7.50, Notes: "Estação Carioca; a estação do bonde fica atrás da Petrobras"},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "35 min", CostBRL: 7.50},
				{Mode: "uber", Duration: "30 min", CostBRL: 35},
			},
		},
		Tags:          []string{"bonde", "santa-teresa", "arcos-da-lapa", "boemia"},
		LocalTips:     "Desça no Largo dos Guimarães e volte a pé descendo pela Escadaria Selarón.",
		VisitDuration: "3 horas",
	},
	{
		ID:          "feira-de-sao-cristovao",
		Name:        "Feira de São Cristóvão",
		Description: "O Centro Luiz Gonzaga de Tradições Nordestinas: 700 barracas de comida, forró ao vivo, cordel e repente num pavilhão que funciona sem parar do fim de semana.",
		Category:    CategoryFood,
		Coordinates: Coordinates{Latitude: -22.8979, Longitude: -43.2203},
		Image:       "https://images.rioguia.app/attractions/feira-sao-cristovao.jpg",
		Cost: Cost{
			AmountBRL:   10,
			AmountUSD:   2,
			Description: "Entrada; comidas e shows à parte",
		},
		BestTime: BestTime{
			Hours:  "18:00-00:00",
			Reason: "Sexta e sábado à noite o forró toma os dois palcos",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "uber", Duration: "30 min", CostBRL: 38, Notes: "Desça na entrada principal do pavilhão"},
				{Mode: "metro", Duration: "45 min", CostBRL: 7.50, Notes: "Estação São Cristóvão e passarela"},
			},
			FromIpanema: []TransportOption{
				{Mode: "uber", Duration: "35 min", CostBRL: 45},
			},
		},
		Tags:          []string{"nordeste", "forro", "carne-de-sol", "feira", "musica"},
		SafetyNotes:   "Use transporte por aplicativo na ida e na volta; o entorno é vazio à noite.",
		LocalTips:     "Peça carne de sol com macaxeira na Barraca da Lucinha e deixe espaço para o caldinho.",
		VisitDuration: "uma noite",
	},
	{
		ID:          "confeitaria-colombo",
		Name:        "Confeitaria Colombo",
		Description: "Aberta em 1894, a confeitaria do centro conserva espelhos belgas, vitrais e balcões de jacarandá. Era o salão de chá da belle époque carioca e segue servindo pastéis de nata e quindins.",
		Category:    CategoryFood,
		Coordinates: Coordinates{Latitude: -22.9046, Longitude: -43.1768},
		Image:       "https://images.rioguia.app/attractions/confeitaria-colombo.jpg",
		Cost: Cost{
			AmountBRL:   60,
			AmountUSD:   12,
			Description: "Café da tarde médio por pessoa",
		},
		BestTime: BestTime{
			Hours:  "10:00-12:00",
			Reason: "Antes do rush do almoço dos escritórios do centro",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "25 min", CostBRL: 7.50, Notes: "Estação Uruguaiana, 5 minutos a pé pela Gonçalves Dias"},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "35 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"cafe", "belle-epoque", "centro", "doces", "historia"},
		LocalTips:     "A filial no Forte de Copacabana tem a mesma cozinha com vista para o mar.",
		VisitDuration: "1-2 horas",
	},
	{
		ID:          "morro-da-santa-marta",
		Name:        "Morro Dona Marta",
		Description: "A favela de Botafogo ficou famosa pela praça onde Michael Jackson gravou They Don't Care About Us e pelo mirante acima das casas coloridas, alcançado por um plano inclinado gratuito.",
		Category:    CategoryFavela,
		Coordinates: Coordinates{Latitude: -22.9466, Longitude: -43.1927},
		Image:       "https://images.rioguia.app/attractions/santa-marta.jpg",
		Cost: Cost{
			AmountBRL:   50,
			AmountUSD:   10,
			Description: "Tour guiado por morador; o plano inclinado é gratuito",
		},
		BestTime: BestTime{
			Hours:  "09:00-15:00",
			Reason: "Visibilidade do mirante e comércio local aberto",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "20 min", CostBRL: 7.50, Notes: "Estação Botafogo e 15 minutos a pé até a base"},
				{Mode: "taxi", Duration: "15 min", CostBRL: 22},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "30 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"favela", "mirante", "michael-jackson", "botafogo", "comunidade"},
		SafetyNotes:   "Visite somente com guia local credenciado e respeite as orientações dos moradores.",
		LocalTips:     "Guias da própria comunidade saem da base do plano inclinado; combine o preço antes.",
		VisitDuration: "2-3 horas",
	},
	{
		ID:          "rocinha",
		Name:        "Rocinha",
		Description: "A maior favela do país desce a encosta entre a Gávea e São Conrado. Tours conduzidos por moradores passam por becos, lajes com vista para o mar e projetos sociais da comunidade.",
		Category:    CategoryFavela,
		Coordinates: Coordinates{Latitude: -22.9881, Longitude: -43.2480},
		Image:       "https://images.rioguia.app/attractions/rocinha.jpg",
		Cost: Cost{
			AmountBRL:   80,
			AmountUSD:   16,
			Description: "Tour guiado por morador, meio período",
		},
		BestTime: BestTime{
			Hours:  "09:00-13:00",
			Reason: "Manhã de dias úteis, com a comunidade em plena rotina",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "onibus", Duration: "35 min", CostBRL: 4.70, Notes: "Linhas da Zona Sul sentido São Conrado"},
				{Mode: "uber", Duration: "25 min", CostBRL: 35},
			},
			FromIpanema: []TransportOption{
				{Mode: "uber", Duration: "20 min", CostBRL: 28},
			},
		},
		Tags:          []string{"favela", "tour", "sao-conrado", "comunidade", "laje"},
		SafetyNotes:   "Nunca entre por conta própria; feche com agências que empregam guias da Rocinha.",
		LocalTips:     "Prefira tours a pé aos de jipe: o dinheiro fica na comunidade e o ritmo permite conversar.",
		VisitDuration: "meio dia",
	},
	{
		ID:          "cordao-da-bola-preta",
		Name:        "Cordão da Bola Preta",
		Description: "O bloco de rua mais antigo em atividade no Rio, fundado em 1918. Seu desfile de sábado de Carnaval pelo centro reúne mais de um milhão de foliões de preto e branco com bolas pretas.",
		Category:    CategoryBloco,
		Coordinates: Coordinates{Latitude: -22.9068, Longitude: -43.1770},
		Image:       "https://images.rioguia.app/attractions/bola-preta.jpg",
		Cost: Cost{
			AmountBRL:   0,
			AmountUSD:   0,
			Description: "Bloco de rua gratuito",
		},
		BestTime: BestTime{
			Hours:  "07:00-14:00",
			Reason: "A concentração começa cedo; quem chega depois das 10h pega a multidão máxima",
		},
		Transport: TransportInfo{
			FromCopacabana: []TransportOption{
				{Mode: "metro", Duration: "25 min", CostBRL: 7.50, Notes: "Estação Cinelândia; no Carnaval só o metrô funciona bem"},
			},
			FromIpanema: []TransportOption{
				{Mode: "metro", Duration: "35 min", CostBRL: 7.50},
			},
		},
		Tags:          []string{"bloco", "carnaval", "centro", "folia", "tradicao"},
		SafetyNotes:   "Leve só o essencial em doleira; combine ponto de encontro, o sinal de celular cai na multidão.",
		LocalTips:     "Fantasia de preto e branco é o código do bloco desde 1918.",
		VisitDuration: "meio dia",
	},
}
