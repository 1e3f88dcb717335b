package middleware

import (
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// Permissao is a named capability checked by the route gates
type Permissao string

const (
	// Administration (síndico) surface
	PermGerenciarClientes   Permissao = "gerenciar_clientes"
	PermGerenciarAdmins     Permissao = "gerenciar_admins"
	PermGerenciarAreas      Permissao = "gerenciar_areas"
	PermGerenciarAvisos     Permissao = "gerenciar_avisos"
	PermGerenciarVotacoes   Permissao = "gerenciar_votacoes"
	PermGerenciarPagamentos Permissao = "gerenciar_pagamentos"
	PermVerDashboard        Permissao = "ver_dashboard"
	PermVerLogs             Permissao = "ver_logs"

	// Concierge (portaria) surface
	PermRegistrarEncomendas Permissao = "registrar_encomendas"
	PermRegistrarVisitantes Permissao = "registrar_visitantes"
	PermVerFeedGeral        Permissao = "ver_feed_geral"
)

// nivelPermissoes maps authorization levels to their capabilities:
// 2 síndico, 3 porteiro, 5 super-admin. Residents (level 1) never
// appear here; resident routes rely on ownership checks instead.
var nivelPermissoes = map[int]map[Permissao]bool{
	2: {
		PermGerenciarClientes:   true,
		PermGerenciarAreas:      true,
		PermGerenciarAvisos:     true,
		PermGerenciarVotacoes:   true,
		PermGerenciarPagamentos: true,
		PermVerDashboard:        true,
		PermRegistrarEncomendas: true,
		PermRegistrarVisitantes: true,
		PermVerFeedGeral:        true,
	},
	3: {
		PermRegistrarEncomendas: true,
		PermRegistrarVisitantes: true,
		PermVerFeedGeral:        true,
	},
	5: {
		PermGerenciarClientes:   true,
		PermGerenciarAdmins:     true,
		PermGerenciarAreas:      true,
		PermGerenciarAvisos:     true,
		PermGerenciarVotacoes:   true,
		PermGerenciarPagamentos: true,
		PermVerDashboard:        true,
		PermVerLogs:             true,
		PermRegistrarEncomendas: true,
		PermRegistrarVisitantes: true,
		PermVerFeedGeral:        true,
	},
}

// Tem reports whether the level carries the capability
func Tem(nivel int, p Permissao) bool {
	return nivelPermissoes[nivel][p]
}

// RequirePermission gates a route group behind one capability. Must run
// after VerificaToken.
func RequirePermission(p Permissao) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Tem(UserNivel(c), p) {
			response.Forbidden(c, "Acesso negado")
			c.Abort()
			return
		}
		c.Next()
	}
}
