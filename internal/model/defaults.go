package model

// DefaultContent returns the compiled-in content document used when the remote
// store is empty or unreachable. Callers receive a fresh value on every call,
// so mutating the result never leaks into later loads.
func DefaultContent() *ContentDocument {
	return &ContentDocument{
		Header: HeaderContent{
			LogoType:      LogoTypeText,
			LogoText:      "MissigNo",
			ContactButton: "Pedir Orçamento",
		},
		Hero: HeroContent{
			Headline:           `Desbloqueie o Potencial Digital da Sua Marca<span class="text-accent">.</span>`,
			Paragraph:          "Criamos experiências digitais autênticas que conectam, engajam e convertem. Da ideia ao lançamento, somos o parceiro que sua empresa precisa para decolar no mundo online.",
			CTAPrimary:         "Inicie seu Projeto Agora",
			CTASecondary:       "Veja nossos projetos →",
			BackgroundImageURL: "https://images.unsplash.com/photo-1531297484001-80022131f5a1?w=1920&q=70&auto=format&fit=crop",
		},
		About: AboutContent{
			Headline:           `Somos mais que uma agência, somos seu parceiro de <span class="text-accent">crescimento</span>.`,
			Paragraph1:         "Acreditamos que cada marca tem uma história única para contar. Nossa paixão é transformar essa história em experiências digitais que não só pareçam incríveis, mas que também funcionem perfeitamente, gerando resultados reais e duradouros.",
			Paragraph2:         "Combinamos design, tecnologia e estratégia para criar soluções sob medida que elevam sua presença online e conectam você ao seu público de maneira autêntica.",
			ButtonText:         "Fale com um Especialista",
			ImageURL:           "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?q=80&w=2071&auto=format&fit=crop",
			PhilosophyHeadline: "Nossa Filosofia: Criar o Extraordinário.",
			PhilosophyText:     "Não nos contentamos com o 'bom o suficiente'. Mergulhamos fundo em cada projeto para entender sua essência e construir soluções digitais que não apenas atendam, mas superem as expectativas.",
			ValuesHeadline:     "Valores que nos guiam",
			Values: []Value{
				{Icon: "handshake", Title: "Parceria Genuína", Text: "Vemos nossos clientes como parceiros. O seu sucesso é o nosso sucesso. Trabalhamos lado a lado, com transparência e comunicação constante."},
				{Icon: "lightbulb", Title: "Inovação Constante", Text: "O mundo digital está sempre em movimento, e nós também. Estamos sempre explorando novas tecnologias e estratégias para manter sua marca à frente."},
				{Icon: "diamond", Title: "Qualidade Obsessiva", Text: "Do menor pixel ao mais complexo algoritmo, nossa atenção aos detalhes garante um produto final impecável, performático e seguro."},
				{Icon: "chart", Title: "Resultados Mensuráveis", Text: "Design e tecnologia são meios para um fim: o resultado. Focamos em métricas que importam para o seu negócio, otimizando para o crescimento."},
			},
			TeamHeadline: "Conheça quem faz acontecer",
			TeamMembers: []TeamMember{
				{ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?q=80&w=400&auto=format&fit=crop", Name: "Ana Oliveira", Role: "CEO & Estrategista"},
				{ImageURL: "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?q=80&w=400&auto=format&fit=crop", Name: "Bruno Costa", Role: "Líder de Desenvolvimento"},
				{ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=400&auto=format&fit=crop", Name: "Carla Dias", Role: "Designer UX/UI"},
			},
		},
		Process: ProcessContent{
			Headline:    `Da Ideia ao <span class="text-accent">Impacto</span>.`,
			Subheadline: "Nossa metodologia é um processo colaborativo e transparente, desenhado para transformar sua visão em uma realidade digital de sucesso.",
			Steps: []ProcessStep{
				{
					Title:        "Imersão & Estratégia",
					Description:  "Mergulhamos fundo no seu negócio para entender seus desafios, público e objetivos. Esta fase é a fundação de todo o projeto.",
					Icon:         "search",
					Deliverables: []string{"Briefing Aprofundado", "Análise de Mercado", "Definição de KPIs", "Roadmap do Projeto"},
					Tools:        []string{"Miro", "Figma", "Google Analytics", "Notion"},
				},
				{
					Title:        "Design & UX/UI",
					Description:  "Com base na estratégia, criamos interfaces intuitivas e visualmente impactantes, focadas em uma jornada de usuário que converta.",
					Icon:         "design",
					Deliverables: []string{"Wireframes e Fluxos", "Protótipos Interativos", "Design System", "Manual de Identidade Visual"},
					Tools:        []string{"Figma", "Adobe XD", "Illustrator", "Maze"},
				},
				{
					Title:        "Desenvolvimento",
					Description:  "Nossos desenvolvedores transformam o design em código limpo, performático e escalável, preparado para o futuro.",
					Icon:         "code",
					Deliverables: []string{"Front-end Responsivo", "Back-end Robusto", "Integração de APIs", "Código Versionado (Git)"},
					Tools:        []string{"React", "TypeScript", "Node.js", "Supabase"},
				},
				{
					Title:        "Lançamento & Otimização",
					Description:  "Após testes rigorosos, lançamos o projeto. Monitoramos a performance e propomos otimizações contínuas.",
					Icon:         "launch",
					Deliverables: []string{"Deploy em Produção", "Relatórios de Performance", "Plano de Melhorias", "Suporte Técnico"},
					Tools:        []string{"Google Analytics", "Clarity", "Vercel", "Sentry"},
				},
			},
		},
		Portfolio: []PortfolioItem{
			{
				ID:        "1",
				ImageURL:  "https://images.unsplash.com/photo-1551434678-e076c223a692?q=80&w=2070&auto=format&fit=crop",
				Title:     "Plataforma SaaS de Gestão",
				Category:  "Aplicação Web",
				Challenge: "O cliente precisava de uma plataforma centralizada para gerenciar processos internos complexos, antes feitos em planilhas desconexas.",
				Solution:  "Desenvolvemos uma aplicação web robusta com dashboards intuitivos, automação de tarefas e relatórios em tempo real.",
				Results:   "Redução de 40% no tempo gasto em tarefas administrativas e melhoria significativa na tomada de decisões.",
				Technologies: []Technology{
					{Name: "React", Icon: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-11.5 -10.23174 23 20.46348" fill="currentColor"><circle cx="0" cy="0" r="2.05" fill="currentColor"/><g stroke="currentColor" stroke-width="1" fill="none"><ellipse rx="11" ry="4.2"/><ellipse rx="11" ry="4.2" transform="rotate(60)"/><ellipse rx="11" ry="4.2" transform="rotate(120)"/></g></svg>`},
					{Name: "PostgreSQL", Icon: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48" fill="currentColor"><path fill="#336791" d="M24,42c-9.9,0-18-8.1-18-18S14.1,6,24,6s18,8.1,18,18S33.9,42,24,42z"/></svg>`},
				},
			},
		},
		TechCarousel: TechCarouselContent{
			Headline:    `Nossas Ferramentas de <span class="text-accent">Trabalho</span>`,
			Subheadline: "Utilizamos as tecnologias mais modernas e robustas do mercado para construir soluções de ponta.",
			Technologies: []Technology{
				{Name: "React", Icon: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-11.5 -10.23174 23 20.46348"><circle cx="0" cy="0" r="2.05" fill="#61DAFB"/><g stroke="#61DAFB" stroke-width="1" fill="none"><ellipse rx="11" ry="4.2"/><ellipse rx="11" ry="4.2" transform="rotate(60)"/><ellipse rx="11" ry="4.2" transform="rotate(120)"/></g></svg>`},
			},
		},
		SiteMeta: SiteMeta{},
		ThemeSettings: ThemeSettings{
			Primary:     "#0f172a",
			Secondary:   "#1e293b",
			Accent:      "#0891b2",
			AccentHover: "#06b6d4",
			Light:       "#f8fafc",
			Muted:       "#94a3b8",
		},
	}
}
