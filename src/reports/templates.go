package reports

// HTML print templates. Values are injected by plain placeholder
// substitution; there is no logic in the templates themselves.

const declarationPreviewTemplate = `<html lang="uk">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Податкова декларація платника єдиного податку (ФОП, 3 група)</title>
<style>
  @page { size: A4; margin: 20mm; }
  html,body { margin:0; padding:0; }
  body { font-family: 'Times New Roman', Times, serif; font-size: 11px; color: #111; -webkit-print-color-adjust: exact; }
  .page { width: 210mm; min-height: 297mm; padding: 10mm 12mm; box-sizing: border-box; }
  h5 { font-size:11px; margin:4px 0; text-align:center; font-weight: normal; }
  h6 { font-size:12px; margin:4px 0; text-align:center; }
  .text-center { text-align:center; }
  .table-main { width: 100%; border-collapse: collapse; vertical-align: middle; margin:4px 0 8px 0; }
  .table-main td { font-size: 11px; padding: 2px 8px; border: 1px solid black; }
  .amount { text-align:right; white-space:nowrap; }
</style>
</head>
<body>
<div class="page">
  <h6>ПОДАТКОВА ДЕКЛАРАЦІЯ</h6>
  <h5>платника єдиного податку третьої групи (фізичної особи — підприємця)</h5>
  <table class="table-main">
    <tr><td>Платник</td><td>{{FULL_NAME}}</td></tr>
    <tr><td>Реєстраційний номер (ІПН)</td><td>{{TIN}}</td></tr>
    <tr><td>Податкова адреса</td><td>{{ADDRESS}}</td></tr>
    <tr><td>Найменування контролюючого органу</td><td>{{TAX_OFFICE_NAME}}</td></tr>
    <tr><td>Звітний період</td><td>{{PERIOD_NAME}} {{YEAR}} року</td></tr>
  </table>

  <h5>I. Доходи</h5>
  <table class="table-main">
    <tr><td></td><td class="text-center">За квартал</td><td class="text-center">Наростаючим підсумком</td></tr>
    <tr><td>Дохід у національній валюті</td><td class="amount">{{INCOME_UAH_Q}}</td><td class="amount">{{INCOME_UAH_CUM}}</td></tr>
    <tr><td>Дохід в іноземній валюті (грн екв.)</td><td class="amount">{{INCOME_FOREIGN_Q}}</td><td class="amount">{{INCOME_FOREIGN_CUM}}</td></tr>
    <tr><td>Загальна сума доходу</td><td class="amount">{{INCOME_TOTAL_Q}}</td><td class="amount">{{INCOME_TOTAL_CUM}}</td></tr>
  </table>

  <h5>II. Єдиний податок ({{SINGLE_TAX_RATE}}%)</h5>
  <table class="table-main">
    <tr><td>Сума податку наростаючим підсумком</td><td class="amount">{{SINGLE_TAX_CALCULATED}}</td></tr>
    <tr><td>Сума, сплачена за попередні періоди</td><td class="amount">{{SINGLE_TAX_PAID}}</td></tr>
    <tr><td>До сплати за звітний квартал</td><td class="amount">{{SINGLE_TAX_TO_PAY}}</td></tr>
  </table>

  <h5>III. Військовий збір ({{MILITARY_TAX_RATE}}%)</h5>
  <table class="table-main">
    <tr><td>Сума збору наростаючим підсумком</td><td class="amount">{{MILITARY_TAX_CALCULATED}}</td></tr>
    <tr><td>Сума, сплачена за попередні періоди</td><td class="amount">{{MILITARY_TAX_PAID}}</td></tr>
    <tr><td>До сплати за звітний квартал</td><td class="amount">{{MILITARY_TAX_TO_PAY}}</td></tr>
  </table>

  <p>Дата заповнення: {{FILL_DATE}}. Підпис: {{FULL_NAME}}</p>
</div>
</body>
</html>`

const esvPreviewTemplate = `<html lang="uk">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Звіт з ЄСВ (додаток 1)</title>
<style>
  @page { size: A4; margin: 20mm; }
  html,body { margin:0; padding:0; }
  body { font-family: 'Times New Roman', Times, serif; font-size: 11px; color: #111; -webkit-print-color-adjust: exact; }
  .page { width: 210mm; min-height: 297mm; padding: 10mm 12mm; box-sizing: border-box; }
  h6 { font-size:12px; margin:4px 0; text-align:center; }
  .table-main { width: 100%; border-collapse: collapse; margin:4px 0 8px 0; }
  .table-main td, .table-main th { font-size: 11px; padding: 2px 8px; border: 1px solid black; }
  .amount { text-align:right; white-space:nowrap; }
</style>
</head>
<body>
<div class="page">
  <h6>ВІДОМОСТІ про суми нарахованого єдиного внеску за {{YEAR}} рік</h6>
  <table class="table-main">
    <tr><td>Платник</td><td>{{FULL_NAME}}</td></tr>
    <tr><td>Реєстраційний номер (ІПН)</td><td>{{TIN}}</td></tr>
    <tr><td>Код основного КВЕД</td><td>{{KVED_CODE}}</td></tr>
  </table>
  <table class="table-main">
    <tr><th>Місяць</th><th>База нарахування, грн</th><th>Ставка, %</th><th>Сума внеску, грн</th></tr>
{{MONTH_ROWS}}
    <tr><td><b>Усього</b></td><td class="amount"><b>{{TOTAL_BASE}}</b></td><td></td><td class="amount"><b>{{TOTAL_CONTRIBUTION}}</b></td></tr>
  </table>
  <p>Дата заповнення: {{FILL_DATE}}. Підпис: {{FULL_NAME}}</p>
</div>
</body>
</html>`
