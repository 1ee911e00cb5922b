package router

// DefaultCatalog returns the built-in topic catalog: generative-AI
// programming, science fiction, and classical music. Declaration order is
// significant and stable.
func DefaultCatalog() *Catalog {
	genai := Route{
		Name: "genai_programming",
		References: []string{
			"how to build a chatbot using GPT",
			"implementing RAG with vector databases",
			"fine-tuning large language models",
			"prompt engineering best practices",
			"building AI agents with LangChain",
			"vector embeddings for search",
			"transformer architecture explained",
			"creating custom AI models",
			"machine learning model deployment",
			"neural network programming",
			"deep learning frameworks",
			"AI model optimization techniques",
			"generative AI applications",
			"LLM integration patterns",
			"semantic search implementation",
		},
		DistanceThreshold: 0.70,
		Metadata: map[string]interface{}{
			"category": "technology",
			"domain":   "artificial_intelligence",
			"priority": 1,
		},
	}

	scifi := Route{
		Name: "science_fiction",
		References: []string{
			"best sci-fi movies of all time",
			"classic science fiction novels",
			"space opera recommendations",
			"cyberpunk literature and films",
			"time travel stories and paradoxes",
			"alien invasion movies",
			"dystopian future narratives",
			"Star Wars vs Star Trek debate",
			"Isaac Asimov robot stories",
			"Philip K. Dick adaptations",
			"blade runner and its themes",
			"interstellar travel concepts",
			"artificial intelligence in movies",
			"virtual reality fiction",
			"post-apocalyptic scenarios",
			"quantum physics in sci-fi",
			"space exploration adventures",
		},
		DistanceThreshold: 0.68,
		Metadata: map[string]interface{}{
			"category": "entertainment",
			"genre":    "science_fiction",
			"priority": 2,
		},
	}

	classical := Route{
		Name: "classical_music",
		References: []string{
			"Mozart symphonies and sonatas",
			"Bach fugues and cantatas",
			"Beethoven piano concertos",
			"Chopin nocturnes and etudes",
			"Vivaldi Four Seasons",
			"classical music composition techniques",
			"orchestra instrumentation guide",
			"baroque period composers",
			"romantic era classical music",
			"opera performances and arias",
			"chamber music ensembles",
			"classical music theory fundamentals",
			"famous conductors and performances",
			"classical music history timeline",
			"piano virtuoso performances",
			"string quartet repertoire",
			"classical music for beginners",
		},
		DistanceThreshold: 0.65,
		Metadata: map[string]interface{}{
			"category": "arts",
			"genre":    "classical_music",
			"priority": 3,
		},
	}

	c, err := NewCatalog(genai, scifi, classical)
	if err != nil {
		// The built-in catalog is validated by tests; this cannot happen.
		panic(err)
	}
	return c
}
