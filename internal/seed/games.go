package seed

import "github.com/qosme/appGameZone-010V-Grupo3/internal/domain/model"

// Games は初期カタログ。起動時にREPLACEで投入するので
// 手元で編集したタイトルは再起動で元に戻る。
func Games() []model.Game {
	return []model.Game{
		{
			ID:              "gtav",
			Name:            "Grand Theft Auto V",
			Description:     "El juego de mundo abierto más vendido de la historia",
			LongDescription: "Grand Theft Auto V es un videojuego de acción-aventura de mundo abierto desarrollado por Rockstar North y publicado por Rockstar Games. Ambientado en la ciudad ficticia de Los Santos, el juego sigue las historias entrelazadas de tres protagonistas: Michael De Santa, Franklin Clinton y Trevor Philips.",
			Price:           59990,
			Category:        "Acción",
			Rating:          4.5,
			ReleaseDate:     "2013-09-17",
			Developer:       "Rockstar North",
			Publisher:       "Rockstar Games",
			ImageRef:        "gtav",
			IsAvailable:     true,
		},
		{
			ID:              "sims4",
			Name:            "The Sims 4",
			Description:     "Crea y controla la vida de tus Sims",
			LongDescription: "The Sims 4 es un videojuego de simulación social desarrollado por Maxis y publicado por Electronic Arts. Es la cuarta entrega principal de la serie The Sims. El juego permite a los jugadores crear y controlar personajes virtuales llamados Sims, construir casas para ellos y satisfacer sus necesidades básicas.",
			Price:           39990,
			Category:        "Simulación",
			Rating:          4.2,
			ReleaseDate:     "2014-09-02",
			Developer:       "Maxis",
			Publisher:       "Electronic Arts",
			ImageRef:        "sims4",
			IsAvailable:     true,
		},
		{
			ID:              "terraria",
			Name:            "Terraria",
			Description:     "Un juego de aventura y construcción 2D",
			LongDescription: "Terraria es un videojuego de acción-aventura, sandbox y supervivencia desarrollado por Re-Logic. El juego presenta elementos de construcción, exploración, combate y supervivencia. Los jugadores pueden cavar, construir, luchar contra jefes y explorar un mundo generado proceduralmente.",
			Price:           9990,
			Category:        "Aventura",
			Rating:          4.8,
			ReleaseDate:     "2011-05-16",
			Developer:       "Re-Logic",
			Publisher:       "Re-Logic",
			ImageRef:        "terraria",
			IsAvailable:     true,
		},
		{
			ID:              "portal2",
			Name:            "Portal 2",
			Description:     "Un puzzle shooter con mecánicas únicas",
			LongDescription: "Portal 2 es un videojuego de puzzle en primera persona desarrollado y publicado por Valve Corporation. Es la secuela de Portal (2007). El juego presenta nuevos elementos de juego, personajes y una historia que se desarrolla después de los eventos del primer juego.",
			Price:           19990,
			Category:        "Puzzle",
			Rating:          4.9,
			ReleaseDate:     "2011-04-19",
			Developer:       "Valve Corporation",
			Publisher:       "Valve Corporation",
			ImageRef:        "portal",
			IsAvailable:     true,
		},
		{
			ID:              "minecraft",
			Name:            "Minecraft",
			Description:     "El juego de construcción más popular del mundo",
			LongDescription: "Minecraft es un videojuego de construcción de tipo sandbox desarrollado por Mojang Studios. El juego permite a los jugadores construir y destruir bloques en un mundo 3D generado proceduralmente. Los jugadores pueden explorar, recolectar recursos, crear herramientas y construir estructuras.",
			Price:           26990,
			Category:        "Sandbox",
			Rating:          4.7,
			ReleaseDate:     "2011-11-18",
			Developer:       "Mojang Studios",
			Publisher:       "Microsoft",
			ImageRef:        "minecraft",
			IsAvailable:     true,
		},
		{
			ID:              "europauniv4",
			Name:            "Europa Universalis IV",
			Description:     "Un grand strategy game histórico",
			LongDescription: "Europa Universalis IV es un videojuego de estrategia en tiempo real desarrollado por Paradox Development Studio y publicado por Paradox Interactive. El juego permite a los jugadores controlar una nación desde 1444 hasta 1821, guiando su desarrollo a través de la historia.",
			Price:           39990,
			Category:        "Estrategia",
			Rating:          4.3,
			ReleaseDate:     "2013-08-13",
			Developer:       "Paradox Development Studio",
			Publisher:       "Paradox Interactive",
			ImageRef:        "europauniv",
			IsAvailable:     true,
		},
		{
			ID:              "f125",
			Name:            "F1 25",
			Description:     "La experiencia de Fórmula 1 más realista",
			LongDescription: "F1 25 es un videojuego de carreras desarrollado por Codemasters y publicado por EA Sports. El juego presenta la temporada 2025 de Fórmula 1 con todos los equipos, pilotos y circuitos oficiales. Incluye modos de carrera, multijugador y una experiencia de simulación realista.",
			Price:           69990,
			Category:        "Carreras",
			Rating:          4.4,
			ReleaseDate:     "2025-01-01",
			Developer:       "Codemasters",
			Publisher:       "EA Sports",
			ImageRef:        "f125",
			IsAvailable:     true,
		},
		{
			ID:              "farming25",
			Name:            "Farming Simulator 25",
			Description:     "Simula la vida de un granjero moderno",
			LongDescription: "Farming Simulator 25 es un videojuego de simulación desarrollado por Giants Software. Los jugadores pueden cultivar, criar ganado, manejar maquinaria agrícola y gestionar su propia granja. El juego incluye vehículos y equipos reales de marcas famosas del sector agrícola.",
			Price:           49990,
			Category:        "Simulación",
			Rating:          4.1,
			ReleaseDate:     "2025-01-01",
			Developer:       "Giants Software",
			Publisher:       "Focus Entertainment",
			ImageRef:        "farming",
			IsAvailable:     true,
		},
	}
}
