package server

import (
	"net/http"

	"github.com/aristath/brokerbook/internal/services"
)

func (s *Server) handleListStockQuotes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dataset.StockQuotes())
}

func (s *Server) handleAddStockQuote(w http.ResponseWriter, r *http.Request) {
	var in services.StockQuoteInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	created, err := s.dataset.AddStockQuote(in)
	if err != nil {
		s.writeServiceError(w, r, "add stock quote", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListBrokers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dataset.Brokers())
}

func (s *Server) handleAddBroker(w http.ResponseWriter, r *http.Request) {
	var in services.BrokerInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	created, err := s.dataset.AddBroker(in)
	if err != nil {
		s.writeServiceError(w, r, "add broker", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListInvestors(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dataset.Investors())
}

func (s *Server) handleAddInvestor(w http.ResponseWriter, r *http.Request) {
	var in services.InvestorInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	created, err := s.dataset.AddInvestor(in)
	if err != nil {
		s.writeServiceError(w, r, "add investor", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dataset.InvestmentCompanies())
}

func (s *Server) handleAddCompany(w http.ResponseWriter, r *http.Request) {
	var in services.CompanyInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	created, err := s.dataset.AddInvestmentCompany(in)
	if err != nil {
		s.writeServiceError(w, r, "add investment company", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, created)
}
